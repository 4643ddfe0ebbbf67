package shared

import (
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/errs"
)

var (
	ErrBookingNotFound  = errs.NotFound("booking not found")
	ErrBusinessNotFound = errs.NotFound("business not found")
	ErrServiceNotFound  = errs.NotFound("service not found")
)

// NotFoundAs replaces a repository NOT_FOUND with the given domain error and
// passes everything else through.
func NotFoundAs(err, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return err
}
