//go:build e2e

package business_test

import (
	"fmt"
	"net/http"
	"testing"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/handler/dto/response"
	"marketplace-api/tests/common/builder"
	"marketplace-api/tests/common/dbtest"
	"marketplace-api/tests/common/httptest"
	"marketplace-api/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	businessesURL = "/businesses"
	businessURL   = "/businesses/%s"
	employeesURL  = "/businesses/%s/employees"
	employeeURL   = "/businesses/%s/employees/%s"
	servicesURL   = "/businesses/%s/services"
	serviceURL    = "/businesses/%s/services/%s"
	analyticsURL  = "/businesses/%s/analytics"
	bizBookings   = "/businesses/%s/bookings"
)

type BusinessSuite struct {
	e2e.SharedSuite
}

func TestBusinessSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BusinessSuite))
}

func (s *BusinessSuite) TestCreateBusiness() {
	s.Run("Normal case: business account registers and reads back", func() {
		t := s.T()
		ownerID := uuid.New()
		token := s.JWT.GenerateToken(t, ownerID, user.RoleBusiness)
		reqBody := builder.NewBusinessBuilder().BuildCreateRequestDTO()

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, businessesURL, reqBody, token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var created response.BusinessResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &created))

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(businessURL, created.ID), nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var got response.BusinessResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &got))

		expected := response.BusinessResponse{
			OwnerID:      ownerID.String(),
			Name:         reqBody.Name,
			Description:  reqBody.Description,
			Address:      reqBody.Address,
			Phone:        reqBody.Phone,
			WorkingHours: builder.NewBusinessBuilder().WorkingHours,
		}
		opts := cmpopts.IgnoreFields(response.BusinessResponse{}, "ID", "CreatedAt", "UpdatedAt")
		if diff := cmp.Diff(expected, got, opts); diff != "" {
			t.Errorf("business mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: plain users cannot register a business", func() {
		t := s.T()
		token := s.JWT.GenerateToken(t, uuid.New(), user.RoleUser)
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, businessesURL, builder.NewBusinessBuilder().BuildCreateRequestDTO(), token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	s.Run("Error case: unknown business", func() {
		t := s.T()
		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(businessURL, uuid.New()), nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "business not found")
	})
}

func (s *BusinessSuite) TestProfileUpdate() {
	s.Run("owner clears the phone and keeps the rest", func() {
		t := s.T()
		ownerID := uuid.New()
		bizID := dbtest.CreateTestBusiness(t, s.DB, ownerID, "Corner Barber")
		token := s.JWT.GenerateToken(t, ownerID, user.RoleBusiness)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(businessURL, bizID),
			map[string]any{"description": "Now with beard trims", "phone": nil}, token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var got response.BusinessResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &got))
		assert.Equal(t, "Corner Barber", got.Name)
		assert.Equal(t, "Now with beard trims", got.Description)
		assert.Empty(t, got.Phone)
	})

	s.Run("employee needs editProfile", func() {
		t := s.T()
		ownerID, staffID := uuid.New(), uuid.New()
		bizID := dbtest.CreateTestBusiness(t, s.DB, ownerID, "Corner Barber")
		dbtest.AddTestEmployee(t, s.DB, bizID, staffID, "staff", map[string]bool{"manageBookings": true})
		token := s.JWT.GenerateToken(t, staffID, user.RoleUser)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(businessURL, bizID),
			map[string]any{"name": "Hijacked"}, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "editProfile")

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bizBookings, bizID), nil, token)
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})
}

func (s *BusinessSuite) TestEmployees() {
	s.Run("roster lifecycle and the cap of four", func() {
		t := s.T()
		ownerID := uuid.New()
		bizID := dbtest.CreateTestBusiness(t, s.DB, ownerID, "Corner Barber")
		token := s.JWT.GenerateToken(t, ownerID, user.RoleBusiness)
		url := fmt.Sprintf(employeesURL, bizID)

		var first response.EmployeeResponse
		for i := range 4 {
			rec := httptest.PerformRequest(t, s.Router, http.MethodPost, url,
				map[string]any{"userId": uuid.New(), "role": "staff"}, token)
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			if i == 0 {
				require.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &first))
			}
		}

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, url, map[string]any{"userId": uuid.New()}, token)
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "at most 4 employees")

		rec = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(employeeURL, bizID, first.ID),
			map[string]any{"role": "manager", "permissions": map[string]any{"viewAnalytics": true}}, token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var updated response.EmployeeResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &updated))
		assert.Equal(t, "manager", updated.Role)
		assert.True(t, updated.Permissions.ViewAnalytics)

		rec = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(employeeURL, bizID, first.ID), nil, token)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusOK, rec.Code)
		var roster []response.EmployeeResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &roster))
		assert.Len(t, roster, 3)
	})

	s.Run("employees cannot manage the roster", func() {
		t := s.T()
		ownerID, staffID := uuid.New(), uuid.New()
		bizID := dbtest.CreateTestBusiness(t, s.DB, ownerID, "Corner Barber")
		dbtest.AddTestEmployee(t, s.DB, bizID, staffID, "manager", map[string]bool{
			"manageBookings": true, "manageServices": true, "viewAnalytics": true, "editProfile": true,
		})
		token := s.JWT.GenerateToken(t, staffID, user.RoleUser)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(employeesURL, bizID),
			map[string]any{"userId": uuid.New()}, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(employeesURL, bizID), nil, token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	s.Run("strangers cannot see the roster", func() {
		t := s.T()
		bizID := dbtest.CreateTestBusiness(t, s.DB, uuid.New(), "Corner Barber")
		token := s.JWT.GenerateToken(t, uuid.New(), user.RoleUser)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(employeesURL, bizID), nil, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func (s *BusinessSuite) TestServices() {
	s.Run("catalogue edits leave booking snapshots alone", func() {
		t := s.T()
		ownerID := uuid.New()
		bizID := dbtest.CreateTestBusiness(t, s.DB, ownerID, "Corner Barber")
		token := s.JWT.GenerateToken(t, ownerID, user.RoleBusiness)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(servicesURL, bizID),
			builder.NewServiceBuilder().BuildCreateRequestDTO(), token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var svc response.ServiceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &svc))
		assert.True(t, svc.Active)

		svcID := uuid.MustParse(svc.ID)
		bookingID := dbtest.CreateTestBooking(t, s.DB, dbtest.BookingFixture{
			UserID: uuid.New(), BusinessID: bizID, ServiceID: svcID,
			Date: "2025-06-02", StartTime: "09:00", EndTime: "09:30",
		})

		rec = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(serviceURL, bizID, svc.ID),
			map[string]any{"priceCents": 9900}, token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(serviceURL, bizID, svc.ID), nil, token)
		require.Equal(t, http.StatusNoContent, rec.Code)

		admin := s.JWT.GenerateToken(t, uuid.New(), user.RoleAdmin)
		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, "/bookings/"+bookingID.String(), nil, admin)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var b response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &b))
		assert.Empty(t, b.Service.ID)
		assert.Equal(t, int64(2500), b.Service.PriceCents)
		assert.Equal(t, int64(2500), b.TotalPriceCents)
	})

	s.Run("public list includes inactive services", func() {
		t := s.T()
		bizID := dbtest.CreateTestBusiness(t, s.DB, uuid.New(), "Corner Barber")
		dbtest.CreateTestService(t, s.DB, bizID, "Haircut", 2500, 30)
		inactive := dbtest.CreateTestService(t, s.DB, bizID, "Perm", 8000, 90)
		_, err := s.DB.Exec(t.Context(), "UPDATE services SET active = false WHERE id = $1", inactive)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(servicesURL, bizID), nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var list []response.ServiceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &list))
		assert.Len(t, list, 2)
	})
}

func (s *BusinessSuite) TestAnalytics() {
	s.Run("counts per status and paid revenue", func() {
		t := s.T()
		ownerID := uuid.New()
		bizID := dbtest.CreateTestBusiness(t, s.DB, ownerID, "Corner Barber")
		svcID := dbtest.CreateTestService(t, s.DB, bizID, "Haircut", 2500, 30)
		for _, status := range []string{"pending", "pending", "cancelled"} {
			dbtest.CreateTestBooking(t, s.DB, dbtest.BookingFixture{
				UserID: uuid.New(), BusinessID: bizID, ServiceID: svcID,
				Date: "2025-06-02", StartTime: "09:00", EndTime: "09:30", Status: status,
			})
		}
		token := s.JWT.GenerateToken(t, ownerID, user.RoleBusiness)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(analyticsURL, bizID), nil, token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var got response.AnalyticsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &got))
		assert.Equal(t, int64(3), got.TotalBookings)
		assert.Equal(t, map[string]int64{"pending": 2, "confirmed": 0, "completed": 0, "cancelled": 1}, got.BookingsByStatus)
		assert.Zero(t, got.RevenueCents)
	})
}
