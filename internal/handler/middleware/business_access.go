package middleware

import (
	"net/http"

	"marketplace-api/internal/domain/authz"
	"marketplace-api/internal/domain/business"
	"marketplace-api/internal/handler/httperr"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxBusinessAccessKey = "business_access"
	businessIDParam      = "id"
)

var errInvalidBusinessID = errs.Mark(errs.New("invalid business id"), errs.ErrValidation)

// BusinessAccess resolves the caller's relationship to the business named by
// the :id path parameter. It must run after RequireAuth.
type BusinessAccess struct {
	authorizer usecase.BusinessAuthorizer
}

func NewBusinessAccess(authorizer usecase.BusinessAuthorizer) *BusinessAccess {
	return &BusinessAccess{authorizer: authorizer}
}

// Require admits the owner, an admin, or an employee. A nil capability admits
// any employee.
func (m *BusinessAccess) Require(capability *business.Capability) gin.HandlerFunc {
	return m.resolve(func(c *gin.Context, id uuid.UUID) (authz.Decision, error) {
		caller, _ := GetCaller(c)
		return m.authorizer.Authorize(c.Request.Context(), caller, id, capability)
	})
}

func (m *BusinessAccess) RequireOwner() gin.HandlerFunc {
	return m.resolve(func(c *gin.Context, id uuid.UUID) (authz.Decision, error) {
		caller, _ := GetCaller(c)
		return m.authorizer.AuthorizeOwner(c.Request.Context(), caller, id)
	})
}

func (m *BusinessAccess) resolve(fn func(*gin.Context, uuid.UUID) (authz.Decision, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetCaller(c); !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthed, "Authentication required", nil)
			return
		}
		id, err := uuid.Parse(c.Param(businessIDParam))
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidBusinessID, "Invalid business id", nil)
			return
		}
		decision, err := fn(c, id)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		c.Set(ctxBusinessAccessKey, decision)
		c.Next()
	}
}

func GetBusinessAccess(c *gin.Context) (authz.Decision, bool) {
	v, exists := c.Get(ctxBusinessAccessKey)
	if !exists {
		return authz.Decision{}, false
	}
	d, ok := v.(authz.Decision)
	return d, ok
}

// Cap is a convenience for building route tables.
func Cap(c business.Capability) *business.Capability {
	return &c
}
