package api

import (
	"net/http"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/handler/httperr"
	"marketplace-api/internal/handler/middleware"
	"marketplace-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errUnauthenticated = errs.Unauthorized("authentication required")
	errNoAccess        = errs.New("business access not resolved")
)

func callerOrAbort(c *gin.Context) (user.Caller, bool) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return user.Caller{}, false
	}
	return caller, true
}

// accessOrAbort reads the decision left by the business access middleware.
// Its absence is a routing bug.
func accessOrAbort(c *gin.Context) (uuid.UUID, bool) {
	d, ok := middleware.GetBusinessAccess(c)
	if !ok {
		httperr.Respond(c, errNoAccess)
		return uuid.Nil, false
	}
	return d.BusinessID, true
}

func uuidParam(c *gin.Context, name, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), msg, nil)
		return uuid.Nil, false
	}
	return id, true
}
