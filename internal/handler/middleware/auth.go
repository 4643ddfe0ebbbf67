package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/handler/httperr"
	"marketplace-api/internal/pkg/cookie"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxCallerKey = "caller"
	ctxClaimsKey = "jwt_claims"
)

var (
	errTokenRequired = errs.Mark(errs.New("access token required"), errs.ErrUnauthorized)
	errNotAuthed     = errs.Mark(errs.New("authentication required"), errs.ErrUnauthorized)
	errAdminOnly     = errs.Mark(errs.New("admin role required"), errs.ErrUnauthorized)
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerOrCookie(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenRequired, "Access token required", nil)
			return
		}

		caller, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		setCaller(c, caller)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthed, "Authentication required", nil)
			return
		}
		if !caller.IsAdmin() {
			httperr.AbortWithError(c, http.StatusUnauthorized, errAdminOnly, "Admin role required", nil)
			return
		}
		c.Next()
	}
}

func bearerOrCookie(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setCaller(c *gin.Context, caller user.Caller) {
	c.Set(ctxCallerKey, caller)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": caller.ID.String(),
		"role":    caller.Role.String(),
	})
}

func GetCaller(c *gin.Context) (user.Caller, bool) {
	v, exists := c.Get(ctxCallerKey)
	if !exists {
		return user.Caller{}, false
	}
	caller, ok := v.(user.Caller)
	return caller, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	caller, ok := GetCaller(c)
	if !ok {
		return uuid.Nil, false
	}
	return caller.ID, true
}
