package booking

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MinRating       = 1
	MaxRating       = 5
	MaxReviewLength = 1000
	MaxNotesLength  = 500
	MaxReasonLength = 500
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < MinRating || v > MaxRating {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

// Review is optional free text attached with a rating. Empty is allowed.
type Review struct {
	text string
}

func NewReview(s string) (Review, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxReviewLength {
		return Review{}, ErrReviewTooLong
	}
	return Review{text: t}, nil
}

func (r Review) String() string { return r.text }

// ServiceSnapshot freezes the service as it was when the booking was made.
type ServiceSnapshot struct {
	ID              uuid.UUID
	Name            string
	PriceCents      int64
	DurationMinutes int
}

func trimmedOptional(s *string, limit int, tooLong error) (*string, error) {
	if s == nil {
		return nil, nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(t) > limit {
		return nil, tooLong
	}
	return &t, nil
}
