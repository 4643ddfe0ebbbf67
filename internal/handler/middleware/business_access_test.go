//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"marketplace-api/internal/domain/authz"
	"marketplace-api/internal/domain/business"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/handler/middleware"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/tests/common/httptest"
	usecasemock "marketplace-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type accessFixture struct {
	router     *gin.Engine
	tokens     *usecasemock.MockTokenValidator
	authorizer *usecasemock.MockBusinessAuthorizer
}

func newAccessFixture(t *testing.T) *accessFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	f := &accessFixture{
		router:     gin.New(),
		tokens:     usecasemock.NewMockTokenValidator(ctrl),
		authorizer: usecasemock.NewMockBusinessAuthorizer(ctrl),
	}
	auth := middleware.NewAuthMiddleware(f.tokens)
	access := middleware.NewBusinessAccess(f.authorizer)

	echo := func(c *gin.Context) {
		d, ok := middleware.GetBusinessAccess(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"outcome": string(d.Outcome), "employee": d.ActingAsEmployee()})
	}
	f.router.GET("/businesses/:id/analytics", auth.RequireAuth(), access.Require(middleware.Cap(business.CapViewAnalytics)), echo)
	f.router.POST("/businesses/:id/employees", auth.RequireAuth(), access.RequireOwner(), echo)
	return f
}

func TestBusinessAccessRequire(t *testing.T) {
	bizID := uuid.New()
	staff := user.Caller{ID: uuid.New(), Role: user.RoleUser}

	t.Run("employee decision is stored", func(t *testing.T) {
		f := newAccessFixture(t)
		f.tokens.EXPECT().ValidateToken("t").Return(staff, nil)
		f.authorizer.EXPECT().Authorize(gomock.Any(), staff, bizID, middleware.Cap(business.CapViewAnalytics)).
			Return(authz.Decision{Outcome: authz.OutcomeEmployee, BusinessID: bizID}, nil)

		rec := httptest.PerformRequest(t, f.router, http.MethodGet, "/businesses/"+bizID.String()+"/analytics", nil, "t")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"outcome":"employee","employee":true}`, rec.Body.String())
	})

	t.Run("denial is 401", func(t *testing.T) {
		f := newAccessFixture(t)
		f.tokens.EXPECT().ValidateToken("t").Return(staff, nil)
		f.authorizer.EXPECT().Authorize(gomock.Any(), staff, bizID, gomock.Any()).
			Return(authz.Decision{}, authz.ErrNoRelationship)

		rec := httptest.PerformRequest(t, f.router, http.MethodGet, "/businesses/"+bizID.String()+"/analytics", nil, "t")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "not authorized to access this business")
	})

	t.Run("missing business is 404", func(t *testing.T) {
		f := newAccessFixture(t)
		f.tokens.EXPECT().ValidateToken("t").Return(staff, nil)
		f.authorizer.EXPECT().Authorize(gomock.Any(), staff, bizID, gomock.Any()).
			Return(authz.Decision{}, errs.NotFound("business not found"))

		rec := httptest.PerformRequest(t, f.router, http.MethodGet, "/businesses/"+bizID.String()+"/analytics", nil, "t")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id never reaches the authorizer", func(t *testing.T) {
		f := newAccessFixture(t)
		f.tokens.EXPECT().ValidateToken("t").Return(staff, nil)

		rec := httptest.PerformRequest(t, f.router, http.MethodGet, "/businesses/xyz/analytics", nil, "t")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid business id")
	})
}

func TestBusinessAccessRequireOwner(t *testing.T) {
	bizID := uuid.New()
	ownerCaller := user.Caller{ID: uuid.New(), Role: user.RoleBusiness}

	f := newAccessFixture(t)
	f.tokens.EXPECT().ValidateToken("t").Return(ownerCaller, nil)
	f.authorizer.EXPECT().AuthorizeOwner(gomock.Any(), ownerCaller, bizID).
		Return(authz.Decision{Outcome: authz.OutcomeOwner, BusinessID: bizID}, nil)

	rec := httptest.PerformRequest(t, f.router, http.MethodPost, "/businesses/"+bizID.String()+"/employees", nil, "t")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"outcome":"owner","employee":false}`, rec.Body.String())
}
