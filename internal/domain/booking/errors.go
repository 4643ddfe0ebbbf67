package booking

import "marketplace-api/internal/pkg/errs"

var (
	ErrInvalidStatus    = errs.Mark(errs.New("invalid booking status"), errs.ErrValidation)
	ErrInvalidRating    = errs.Mark(errs.New("rating must be between 1 and 5"), errs.ErrValidation)
	ErrReviewTooLong    = errs.Mark(errs.New("review exceeds maximum length"), errs.ErrValidation)
	ErrNotesTooLong     = errs.Mark(errs.New("notes exceed maximum length"), errs.ErrValidation)
	ErrReasonTooLong    = errs.Mark(errs.New("cancellation reason exceeds maximum length"), errs.ErrValidation)
	ErrInvalidTimeRange = errs.Mark(errs.New("end time must be after start time on the same day"), errs.ErrValidation)

	ErrNotCompleted = errs.Mark(errs.New("only completed bookings can be reviewed"), errs.ErrConflict)
	ErrNotCustomer  = errs.Mark(errs.New("only the customer can review this booking"), errs.ErrUnauthorized)
	ErrAccessDenied = errs.Mark(errs.New("not authorized to access this booking"), errs.ErrUnauthorized)
)
