//go:build unit

package api_test

import (
	"net/http"
	"slices"
	"strings"
	"testing"
	"time"

	"marketplace-api/internal/domain/schedule"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/tests/common/builder"
	"marketplace-api/tests/common/httptest"
	"marketplace-api/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	f *fixture
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.f = newFixture(s.T())
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	b := builder.NewBookingBuilder().WithUserID(customer.ID)
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView("Corner Barber", owner.ID)

	validation := []testCaseBooking{
		{name: "missing businessId", mutate: testutil.Field("businessId", nil), expectCode: http.StatusBadRequest},
		{name: "missing serviceId", mutate: testutil.Field("serviceId", nil), expectCode: http.StatusBadRequest},
		{name: "missing date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
		{name: "malformed date", mutate: testutil.Field("date", "2025-13-40"), expectCode: http.StatusBadRequest},
		{name: "malformed startTime", mutate: testutil.Field("startTime", "9am"), expectCode: http.StatusBadRequest},
		{name: "malformed endTime", mutate: testutil.Field("endTime", "25:00"), expectCode: http.StatusBadRequest},
		{name: "notes too long", mutate: testutil.Field("notes", strings.Repeat("n", 1001)), expectCode: http.StatusBadRequest},
		{name: "businessId not a uuid", mutate: testutil.Field("businessId", "abc"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: 201 with the created booking", func() {
		s.f.bookingCmds.EXPECT().
			Create(gomock.Any(), customer, commands.CreateBookingInput{
				BusinessID: reqBody.BusinessID,
				ServiceID:  reqBody.ServiceID,
				Date:       reqBody.Date,
				StartTime:  reqBody.StartTime,
			}).
			Return(view.ID, nil)
		s.f.bookingQ.EXPECT().GetByID(gomock.Any(), customer, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, url, reqBody, customerToken)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal("pending", body.Status)
		s.Equal("Corner Barber", body.Business.Name)
		s.Equal(int64(2500), body.TotalPriceCents)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/bookings/" + view.ID.String()})
	})

	s.Run("success: explicit endTime is forwarded", func() {
		end := "10:15"
		s.f.bookingCmds.EXPECT().
			Create(gomock.Any(), customer, gomock.Cond(func(x any) bool {
				in, ok := x.(commands.CreateBookingInput)
				return ok && in.EndTime != nil && *in.EndTime == end
			})).
			Return(view.ID, nil)
		s.f.bookingQ.EXPECT().GetByID(gomock.Any(), customer, view.ID).Return(view, nil)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("endTime", end))
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, url, body, customerToken)
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: 400 on invalid body", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, url, body, customerToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 with a bad token", func() {
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, url, reqBody, "forged")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: use case kinds map to status", func() {
		cases := []struct {
			err  error
			code int
		}{
			{errs.NotFound("business not found"), http.StatusNotFound},
			{errs.Validation("invalid time"), http.StatusBadRequest},
			{errs.Conflict("service is not active"), http.StatusBadRequest},
			{errs.New("connection reset"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.f.bookingCmds.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.err)
			rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, url, reqBody, customerToken)
			s.Equal(tc.code, rec.Code, tc.err.Error())
		}
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *BookingHandlerTestSuite) TestListMine() {
	s.Run("success: forwards paging", func() {
		v := builder.NewBookingBuilder().WithUserID(customer.ID).BuildView("Corner Barber", owner.ID)
		page := queries.NewPage([]*queries.BookingView{v}, 6, queries.PageRequest{Page: 2, Limit: 5})
		s.f.bookingQ.EXPECT().ListMine(gomock.Any(), customer, queries.PageRequest{Page: 2, Limit: 5}).Return(page, nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, "/bookings/my?page=2&limit=5", nil, customerToken)

		var body resdto.BookingPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Equal(int64(6), body.Total)
		s.Equal(2, body.TotalPages)
	})

	s.Run("success: defaults are left to the query layer", func() {
		s.f.bookingQ.EXPECT().ListMine(gomock.Any(), customer, queries.PageRequest{}).
			Return(queries.NewPage[*queries.BookingView](nil, 0, queries.PageRequest{Page: 1, Limit: 10}), nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, "/bookings/my", nil, customerToken)

		var body resdto.BookingPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotNil(body.Items)
		s.Empty(body.Items)
	})

	s.Run("error: 400 on page=0", func() {
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, "/bookings/my?page=0", nil, customerToken)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 on a page past the offset range", func() {
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, "/bookings/my?page=30000000&limit=100", nil, customerToken)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestAvailableSlots
// ================================================================================

func (s *BookingHandlerTestSuite) TestAvailableSlots() {
	businessID := uuid.New()
	url := "/bookings/slots/" + businessID.String()

	s.Run("success: slots as HH:MM", func() {
		date, _ := schedule.ParseDate("2025-06-02")
		times := []time.Time{
			time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
		}
		s.f.bookingQ.EXPECT().AvailableSlots(gomock.Any(), businessID, "2025-06-02").
			Return(&queries.AvailableSlots{BusinessID: businessID, Date: date, Slots: slices.Values(times)}, nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, url+"?date=2025-06-02", nil, customerToken)

		var body resdto.SlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]string{"09:00", "09:30"}, body.Slots)
		s.Equal("2025-06-02", body.Date)
	})

	s.Run("success: closed day yields an empty list", func() {
		date, _ := schedule.ParseDate("2025-06-08")
		s.f.bookingQ.EXPECT().AvailableSlots(gomock.Any(), businessID, "2025-06-08").
			Return(&queries.AvailableSlots{BusinessID: businessID, Date: date, Slots: slices.Values([]time.Time(nil))}, nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, url+"?date=2025-06-08", nil, customerToken)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"businessId":"`+businessID.String()+`","date":"2025-06-08","slots":[]}`, rec.Body.String())
	})

	s.Run("error: missing date is a validation error", func() {
		s.f.bookingQ.EXPECT().AvailableSlots(gomock.Any(), businessID, "").Return(nil, errs.Validation("date is required"))

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, url, nil, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "date is required")
	})

	s.Run("error: unknown business", func() {
		s.f.bookingQ.EXPECT().AvailableSlots(gomock.Any(), businessID, "2025-06-02").Return(nil, errs.NotFound("business not found"))

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, url+"?date=2025-06-02", nil, customerToken)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: bad business id", func() {
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, "/bookings/slots/nope?date=2025-06-02", nil, customerToken)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestGet / TestUpdateStatus / TestAddReview / TestDelete
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().WithUserID(customer.ID).BuildView("Corner Barber", owner.ID)

	s.Run("success", func() {
		s.f.bookingQ.EXPECT().GetByID(gomock.Any(), owner, view.ID).Return(view, nil)
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, ownerToken)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: stranger is unauthorized", func() {
		s.f.bookingQ.EXPECT().GetByID(gomock.Any(), stranger, view.ID).Return(nil, errs.Unauthorized("not authorized to access this booking"))
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, strangerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "not authorized")
	})

	s.Run("error: not found", func() {
		s.f.bookingQ.EXPECT().GetByID(gomock.Any(), customer, view.ID).Return(nil, errs.NotFound("booking not found"))
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, customerToken)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodGet, "/bookings/not-a-uuid", nil, customerToken)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	view := builder.NewBookingBuilder().WithUserID(customer.ID).BuildView("Corner Barber", owner.ID)
	url := "/bookings/" + view.ID.String()

	s.Run("success: cancel with reason", func() {
		reason := "sick"
		s.f.bookingCmds.EXPECT().
			UpdateStatus(gomock.Any(), customer, view.ID, commands.UpdateStatusInput{Status: "cancelled", CancellationReason: &reason}).
			Return(nil)
		cancelled := *view
		cancelled.Status = "cancelled"
		cancelled.CancellationReason = &reason
		s.f.bookingQ.EXPECT().GetByID(gomock.Any(), customer, view.ID).Return(&cancelled, nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPut, url,
			map[string]any{"status": "cancelled", "cancellationReason": reason}, customerToken)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
		s.Equal("sick", *body.CancellationReason)
	})

	s.Run("error: missing status", func() {
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPut, url, map[string]any{}, customerToken)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: unknown status from the domain", func() {
		s.f.bookingCmds.EXPECT().UpdateStatus(gomock.Any(), customer, view.ID, gomock.Any()).
			Return(errs.Validation(`invalid booking status "archived"`))
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPut, url, map[string]any{"status": "archived"}, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "archived")
	})
}

func (s *BookingHandlerTestSuite) TestAddReview() {
	view := builder.NewBookingBuilder().WithUserID(customer.ID).AsCompleted().WithRating(5).BuildView("Corner Barber", owner.ID)
	url := "/bookings/" + view.ID.String() + "/review"

	bound := []testCaseBooking{
		{name: "rating 0", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
		{name: "rating 6", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
		{name: "missing rating", mutate: testutil.Field("rating", nil), expectCode: http.StatusBadRequest},
		{name: "review too long", mutate: testutil.Field("review", strings.Repeat("r", 1001)), expectCode: http.StatusBadRequest},
	}
	valid := map[string]any{"rating": 5, "review": "great"}

	s.Run("success", func() {
		s.f.bookingCmds.EXPECT().AddReview(gomock.Any(), customer, view.ID, commands.AddReviewInput{Rating: 5, Review: "great"}).Return(nil)
		s.f.bookingQ.EXPECT().GetByID(gomock.Any(), customer, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, url, valid, customerToken)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(5, *body.Rating)
	})

	s.Run("error: bounds", func() {
		for _, tc := range bound {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), valid, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, url, body, customerToken)
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: booking not completed is 400", func() {
		s.f.bookingCmds.EXPECT().AddReview(gomock.Any(), customer, view.ID, gomock.Any()).
			Return(errs.Conflict("booking must be completed before it can be reviewed"))
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodPost, url, valid, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "completed")
	})
}

func (s *BookingHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/bookings/" + id.String()

	s.Run("success: admin", func() {
		s.f.bookingCmds.EXPECT().Delete(gomock.Any(), admin, id).Return(nil)
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodDelete, url, nil, adminToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: non-admin is rejected before the use case", func() {
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodDelete, url, nil, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Admin role required")
	})

	s.Run("error: not found", func() {
		s.f.bookingCmds.EXPECT().Delete(gomock.Any(), admin, id).Return(errs.NotFound("booking not found"))
		rec := httptest.PerformRequest(s.T(), s.f.router, http.MethodDelete, url, nil, adminToken)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
