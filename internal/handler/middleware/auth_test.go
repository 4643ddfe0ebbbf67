//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/handler/middleware"
	"marketplace-api/internal/pkg/cookie"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/tests/common/httptest"
	usecasemock "marketplace-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *usecasemock.MockTokenValidator) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	tokens := usecasemock.NewMockTokenValidator(ctrl)
	auth := middleware.NewAuthMiddleware(tokens)

	r := gin.New()
	r.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		caller, ok := middleware.GetCaller(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": caller.ID.String(), "role": caller.Role.String()})
	})
	r.GET("/admin", auth.RequireAuth(), auth.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, tokens
}

func TestRequireAuth(t *testing.T) {
	caller := user.Caller{ID: uuid.New(), Role: user.RoleBusiness}

	t.Run("bearer token", func(t *testing.T) {
		r, tokens := newAuthRouter(t)
		tokens.EXPECT().ValidateToken("good").Return(caller, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "good")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, caller.ID.String(), body["id"])
		assert.Equal(t, "business", body["role"])
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		r, tokens := newAuthRouter(t)
		tokens.EXPECT().ValidateToken("from-cookie").Return(caller, nil)

		rec := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/me", nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "from-cookie"}}, "from-header")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		r, _ := newAuthRouter(t)
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("invalid token", func(t *testing.T) {
		r, tokens := newAuthRouter(t)
		tokens.EXPECT().ValidateToken("expired").Return(user.Caller{}, errs.Unauthorized("token expired"))

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "expired")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("admin passes", func(t *testing.T) {
		r, tokens := newAuthRouter(t)
		tokens.EXPECT().ValidateToken("t").Return(user.Caller{ID: uuid.New(), Role: user.RoleAdmin}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin", nil, "t")
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("business role is refused", func(t *testing.T) {
		r, tokens := newAuthRouter(t)
		tokens.EXPECT().ValidateToken("t").Return(user.Caller{ID: uuid.New(), Role: user.RoleBusiness}, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin", nil, "t")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Admin role required")
	})
}
