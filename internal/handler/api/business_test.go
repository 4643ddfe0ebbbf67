//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"marketplace-api/internal/domain/authz"
	"marketplace-api/internal/domain/business"
	"marketplace-api/internal/domain/schedule"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/handler/middleware"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/pkg/patch"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/tests/common/builder"
	"marketplace-api/tests/common/httptest"
	"marketplace-api/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BusinessHandlerTestSuite struct {
	suite.Suite
	f   *fixture
	biz *builder.BusinessBuilder
}

func (s *BusinessHandlerTestSuite) SetupTest() {
	s.f = newFixture(s.T())
	s.biz = builder.NewBusinessBuilder().WithOwnerID(owner.ID)
}

func TestBusinessHandlerSuite(t *testing.T) {
	suite.Run(t, new(BusinessHandlerTestSuite))
}

func (s *BusinessHandlerTestSuite) allow(caller any, capability business.Capability) {
	s.f.authorizer.EXPECT().
		Authorize(gomock.Any(), caller, s.biz.ID, middleware.Cap(capability)).
		Return(authz.Decision{Outcome: authz.OutcomeOwner, BusinessID: s.biz.ID}, nil)
}

func (s *BusinessHandlerTestSuite) TestCreate() {
	reqBody := s.biz.BuildCreateRequestDTO()
	view := s.biz.BuildView()

	s.Run("success: 201", func() {
		s.f.businessCmds.EXPECT().Create(gomock.Any(), owner, gomock.Any()).Return(view.ID, nil)
		s.f.businessQ.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, "/businesses", reqBody, ownerToken)

		var body resdto.BusinessResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal("09:00", body.WorkingHours["monday"].Open)
		s.Equal(0, body.NumReviews)
	})

	s.Run("error: validation", func() {
		cases := []testCaseBooking{
			{name: "missing name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "unknown weekday", mutate: testutil.Field("workingHours", map[string]any{"funday": map[string]any{"open": "09:00", "close": "10:00"}}), expectCode: http.StatusBadRequest},
			{name: "malformed open", mutate: testutil.Field("workingHours", map[string]any{"monday": map[string]any{"open": "9", "close": "10:00"}}), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, "/businesses", body, ownerToken)
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: plain user role", func() {
		s.f.businessCmds.EXPECT().Create(gomock.Any(), customer, gomock.Any()).
			Return(uuid.Nil, errs.Unauthorized("only business accounts can create a business"))
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, "/businesses", reqBody, customerToken)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *BusinessHandlerTestSuite) TestGet() {
	view := s.biz.BuildView()

	s.Run("success: public, no token", func() {
		s.f.businessQ.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, "/businesses/"+view.ID.String(), nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.NotContains(rec.Body.String(), "employees")
	})

	s.Run("error: not found", func() {
		s.f.businessQ.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, errs.NotFound("business not found"))
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, "/businesses/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "business not found")
	})
}

func (s *BusinessHandlerTestSuite) TestUpdate() {
	url := "/businesses/" + s.biz.ID.String()

	s.Run("success: only present keys are sent down", func() {
		s.allow(owner, business.CapEditProfile)
		s.f.businessCmds.EXPECT().
			UpdateProfile(gomock.Any(), s.biz.ID, business.ProfileUpdate{
				Phone:       patch.Field[string]{Set: true, Value: ""},
				Description: patch.Field[string]{Set: true, Null: true},
			}).
			Return(nil)
		s.f.businessQ.EXPECT().GetByID(gomock.Any(), s.biz.ID).Return(s.biz.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPut, url,
			map[string]any{"phone": "", "description": nil}, ownerToken)
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: employee without editProfile", func() {
		s.f.authorizer.EXPECT().
			Authorize(gomock.Any(), stranger, s.biz.ID, middleware.Cap(business.CapEditProfile)).
			Return(authz.Decision{}, errs.Unauthorized("employee lacks the editProfile permission"))

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPut, url, map[string]any{"name": "x"}, strangerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "editProfile")
	})

	s.Run("error: unknown business", func() {
		s.f.authorizer.EXPECT().Authorize(gomock.Any(), owner, s.biz.ID, gomock.Any()).
			Return(authz.Decision{}, errs.NotFound("business not found"))

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPut, url, map[string]any{"name": "x"}, ownerToken)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: no token", func() {
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPut, url, map[string]any{"name": "x"}, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *BusinessHandlerTestSuite) TestBookings() {
	url := "/businesses/" + s.biz.ID.String() + "/bookings"

	s.Run("success: filters are parsed", func() {
		s.allow(owner, business.CapManageBookings)
		day, _ := schedule.ParseDate("2025-06-02")
		status := "confirmed"
		s.f.bookingQ.EXPECT().
			ListForBusiness(gomock.Any(), s.biz.ID, queries.BookingFilter{Date: &day, Status: &status}, queries.PageRequest{Page: 1, Limit: 20}).
			Return(queries.NewPage[*queries.BookingView](nil, 0, queries.PageRequest{Page: 1, Limit: 20}), nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, url+"?date=2025-06-02&status=confirmed&page=1&limit=20", nil, ownerToken)
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: bad status filter", func() {
		s.allow(owner, business.CapManageBookings)
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, url+"?status=archived", nil, ownerToken)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: page out of range", func() {
		for _, q := range []string{"?page=0", "?page=30000000&limit=100"} {
			s.allow(owner, business.CapManageBookings)
			rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, url+q, nil, ownerToken)
			s.Equal(http.StatusBadRequest, rec.Code, q)
		}
	})
}

func (s *BusinessHandlerTestSuite) TestAnalytics() {
	url := "/businesses/" + s.biz.ID.String() + "/analytics"

	s.Run("success", func() {
		s.allow(owner, business.CapViewAnalytics)
		s.f.businessQ.EXPECT().Analytics(gomock.Any(), s.biz.ID).Return(&queries.AnalyticsView{
			BusinessID:       s.biz.ID,
			TotalBookings:    3,
			BookingsByStatus: map[string]int64{"completed": 2, "cancelled": 1},
			RevenueCents:     5000,
			Rating:           4.5,
			NumReviews:       2,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, url, nil, ownerToken)

		var body resdto.AnalyticsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(2), body.BookingsByStatus["completed"])
		s.InDelta(4.5, body.Rating, 1e-9)
	})
}

// ================================================================================
// Employees
// ================================================================================

func (s *BusinessHandlerTestSuite) TestEmployees() {
	url := "/businesses/" + s.biz.ID.String() + "/employees"
	staffUser := uuid.New()
	emp := business.Employee{ID: uuid.New(), UserID: staffUser, Role: business.EmployeeRoleStaff}

	s.Run("list: any relationship", func() {
		s.f.authorizer.EXPECT().Authorize(gomock.Any(), stranger, s.biz.ID, gomock.Nil()).
			Return(authz.Decision{Outcome: authz.OutcomeEmployee, BusinessID: s.biz.ID}, nil)
		s.f.businessQ.EXPECT().Employees(gomock.Any(), s.biz.ID).Return([]business.Employee{emp}, nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, url, nil, strangerToken)

		var body []resdto.EmployeeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal("staff", body[0].Role)
	})

	s.Run("add: owner", func() {
		s.f.authorizer.EXPECT().AuthorizeOwner(gomock.Any(), owner, s.biz.ID).
			Return(authz.Decision{Outcome: authz.OutcomeOwner, BusinessID: s.biz.ID}, nil)
		s.f.employeeCmds.EXPECT().
			Add(gomock.Any(), s.biz.ID, business.NewEmployee{UserID: staffUser, Permissions: business.Permissions{ViewAnalytics: true}}).
			Return(emp, nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, url,
			map[string]any{"userId": staffUser.String(), "permissions": map[string]any{"viewAnalytics": true}}, ownerToken)
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("add: fifth employee is a 400 conflict", func() {
		s.f.authorizer.EXPECT().AuthorizeOwner(gomock.Any(), owner, s.biz.ID).
			Return(authz.Decision{Outcome: authz.OutcomeOwner, BusinessID: s.biz.ID}, nil)
		s.f.employeeCmds.EXPECT().Add(gomock.Any(), s.biz.ID, gomock.Any()).
			Return(business.Employee{}, errs.Conflict("a business can have at most 4 employees"))

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, url, map[string]any{"userId": uuid.NewString()}, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "at most 4")
	})

	s.Run("add: invalid role", func() {
		s.f.authorizer.EXPECT().AuthorizeOwner(gomock.Any(), owner, s.biz.ID).
			Return(authz.Decision{Outcome: authz.OutcomeOwner, BusinessID: s.biz.ID}, nil)
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, url,
			map[string]any{"userId": uuid.NewString(), "role": "boss"}, ownerToken)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("add: employee is refused", func() {
		s.f.authorizer.EXPECT().AuthorizeOwner(gomock.Any(), stranger, s.biz.ID).
			Return(authz.Decision{}, errs.Unauthorized("only the business owner can do this"))
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, url, map[string]any{"userId": uuid.NewString()}, strangerToken)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("update: permissions patch", func() {
		s.f.authorizer.EXPECT().AuthorizeOwner(gomock.Any(), owner, s.biz.ID).
			Return(authz.Decision{Outcome: authz.OutcomeOwner, BusinessID: s.biz.ID}, nil)
		s.f.employeeCmds.EXPECT().
			Update(gomock.Any(), s.biz.ID, emp.ID, business.EmployeeUpdate{ManageBookings: patch.Some(true)}).
			Return(emp, nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPut, url+"/"+emp.ID.String(),
			map[string]any{"permissions": map[string]any{"manageBookings": true}}, ownerToken)
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("remove: unknown employee", func() {
		s.f.authorizer.EXPECT().AuthorizeOwner(gomock.Any(), admin, s.biz.ID).
			Return(authz.Decision{Outcome: authz.OutcomeAdmin, BusinessID: s.biz.ID}, nil)
		s.f.employeeCmds.EXPECT().Remove(gomock.Any(), s.biz.ID, emp.ID).Return(errs.NotFound("employee not found"))

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodDelete, url+"/"+emp.ID.String(), nil, adminToken)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("remove: success", func() {
		s.f.authorizer.EXPECT().AuthorizeOwner(gomock.Any(), owner, s.biz.ID).
			Return(authz.Decision{Outcome: authz.OutcomeOwner, BusinessID: s.biz.ID}, nil)
		s.f.employeeCmds.EXPECT().Remove(gomock.Any(), s.biz.ID, emp.ID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodDelete, url+"/"+emp.ID.String(), nil, ownerToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

// ================================================================================
// Services
// ================================================================================

func (s *BusinessHandlerTestSuite) TestServices() {
	url := "/businesses/" + s.biz.ID.String() + "/services"
	svc := builder.NewServiceBuilder().WithBusinessID(s.biz.ID)

	s.Run("list: public, inactive included", func() {
		inactive := builder.NewServiceBuilder().WithBusinessID(s.biz.ID).Inactive().BuildView()
		s.f.businessQ.EXPECT().Services(gomock.Any(), s.biz.ID).Return([]*queries.ServiceView{svc.BuildView(), inactive}, nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, url, nil, "")

		var body []resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.False(body[1].Active)
	})

	s.Run("create: manageServices", func() {
		s.allow(owner, business.CapManageServices)
		s.f.serviceCmds.EXPECT().Create(gomock.Any(), s.biz.ID, svc.Input()).Return(svc.ID, nil)
		s.f.businessQ.EXPECT().Service(gomock.Any(), s.biz.ID, svc.ID).Return(svc.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, url, svc.BuildCreateRequestDTO(), ownerToken)
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("create: employee without manageServices", func() {
		s.f.authorizer.EXPECT().
			Authorize(gomock.Any(), stranger, s.biz.ID, middleware.Cap(business.CapManageServices)).
			Return(authz.Decision{}, errs.Unauthorized("employee lacks the manageServices permission"))

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, url, svc.BuildCreateRequestDTO(), strangerToken)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("create: validation", func() {
		s.allow(owner, business.CapManageServices)
		body := testutil.DtoMap(s.T(), svc.BuildCreateRequestDTO(), testutil.Field("durationMinutes", 0))
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, url, body, ownerToken)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("update: deactivate", func() {
		s.allow(owner, business.CapManageServices)
		s.f.serviceCmds.EXPECT().Update(gomock.Any(), s.biz.ID, svc.ID, business.ServiceUpdate{Active: patch.Some(false)}).Return(nil)
		s.f.businessQ.EXPECT().Service(gomock.Any(), s.biz.ID, svc.ID).Return(svc.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPut, url+"/"+svc.ID.String(), map[string]any{"active": false}, ownerToken)
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("delete: service of another business", func() {
		s.allow(owner, business.CapManageServices)
		s.f.serviceCmds.EXPECT().Delete(gomock.Any(), s.biz.ID, svc.ID).Return(errs.NotFound("service not found"))

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodDelete, url+"/"+svc.ID.String(), nil, ownerToken)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
