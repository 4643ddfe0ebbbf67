package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"marketplace-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	msgInternal   = "Internal server error"
	maxStackLines = 12
)

type Response struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Respond maps an error from the use cases to a status by its kind. Errors
// without a kind are unexpected: the client sees a generic 500 and the detail
// goes to the log.
func Respond(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("unexpected error",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
			slog.Any("stack", errs.ExtractStackLines(err, maxStackLines)))
		msg = msgInternal
	}
	AbortWithError(c, status, err, msg, nil)
}

// Conflict is reported as 400, not 409.
func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrConflict):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// BindingDetail lists the failed rules of a binding error, or nil when the
// request could not be decoded at all.
func BindingDetail(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, len(verrs))
	for i, fe := range verrs {
		out[i] = FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()}
	}
	return out
}

func AbortWithBindingError(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", BindingDetail(err))
}
