//go:build unit

package booking_test

import (
	"testing"
	"time"

	"marketplace-api/internal/domain/booking"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
	kind   error
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildNew()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, booking.PaymentPending, actual.PaymentStatus())
		assert.Equal(t, b.UserID, actual.UserID())
		assert.Equal(t, b.PriceCents, actual.TotalPriceCents())
		assert.Equal(t, "09:00", actual.StartTime().String())
		assert.Equal(t, "09:30", actual.EndTime().String())
		assert.False(t, actual.HasRating())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("end time defaults to service duration", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.EndTime = ""
			b.DurationMinutes = 45
		})
		actual, err := b.BuildNew()
		require.NoError(t, err)
		assert.Equal(t, "09:45", actual.EndTime().String())
	})

	runCases(t, []testCase{
		{
			name:   "malformed date",
			mutate: func(b *builder.BookingBuilder) { b.Date = "June 2nd" },
			kind:   errs.ErrValidation,
		},
		{
			name:   "malformed start",
			mutate: func(b *builder.BookingBuilder) { b.StartTime = "9h" },
			kind:   errs.ErrValidation,
		},
		{
			name:   "end before start",
			mutate: func(b *builder.BookingBuilder) { b.EndTime = "08:00" },
			errIs:  booking.ErrInvalidTimeRange,
		},
		{
			name:   "end equals start",
			mutate: func(b *builder.BookingBuilder) { b.EndTime = "09:00" },
			errIs:  booking.ErrInvalidTimeRange,
		},
		{
			name: "default end crosses midnight",
			mutate: func(b *builder.BookingBuilder) {
				b.StartTime = "23:30"
				b.EndTime = ""
				b.DurationMinutes = 60
			},
			errIs: booking.ErrInvalidTimeRange,
		},
		{
			name: "notes too long",
			mutate: func(b *builder.BookingBuilder) {
				notes := makeString(booking.MaxNotesLength + 1)
				b.Notes = &notes
			},
			errIs: booking.ErrNotesTooLong,
		},
	})
}

func TestChangeStatus(t *testing.T) {
	later := time.Date(2025, time.June, 3, 8, 0, 0, 0, time.UTC)

	t.Run("any transition is accepted including backward", func(t *testing.T) {
		for _, from := range booking.AllStatuses() {
			for _, to := range booking.AllStatuses() {
				b := builder.NewBookingBuilder().WithStatus(from).BuildDomain()
				_, err := b.ChangeStatus(to, nil, later)
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, b.Status())
			}
		}
	})

	t.Run("same state is an idempotent no-op", func(t *testing.T) {
		bb := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed)
		b := bb.BuildDomain()

		changed, err := b.ChangeStatus(booking.StatusConfirmed, nil, later)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, bb.UpdatedAt, b.UpdatedAt())
	})

	t.Run("cancellation reason is recorded", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		reason := "  customer is ill "
		changed, err := b.ChangeStatus(booking.StatusCancelled, &reason, later)
		require.NoError(t, err)
		assert.True(t, changed)
		require.NotNil(t, b.CancellationReason())
		assert.Equal(t, "customer is ill", *b.CancellationReason())
		assert.Equal(t, later, b.UpdatedAt())
	})

	t.Run("unknown status", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		_, err := b.ChangeStatus(booking.Status("archived"), nil, later)
		require.ErrorIs(t, err, booking.ErrInvalidStatus)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Equal(t, booking.StatusPending, b.Status())
	})
}

func TestAddReview(t *testing.T) {
	later := time.Date(2025, time.June, 3, 8, 0, 0, 0, time.UTC)

	t.Run("completed booking by its customer", func(t *testing.T) {
		bb := builder.NewBookingBuilder().AsCompleted()
		b := bb.BuildDomain()

		require.NoError(t, b.AddReview(bb.UserID, 4, "  Great cut ", later))
		require.NotNil(t, b.RatingValue())
		assert.Equal(t, 4, *b.RatingValue())
		assert.Equal(t, "Great cut", *b.ReviewText())
	})

	t.Run("re-review overwrites", func(t *testing.T) {
		bb := builder.NewBookingBuilder().AsCompleted().WithRating(2)
		b := bb.BuildDomain()

		require.NoError(t, b.AddReview(bb.UserID, 5, "", later))
		assert.Equal(t, 5, *b.RatingValue())
		assert.Equal(t, "", *b.ReviewText())
	})

	t.Run("not completed leaves booking unchanged", func(t *testing.T) {
		for _, st := range []booking.Status{booking.StatusPending, booking.StatusConfirmed, booking.StatusCancelled} {
			bb := builder.NewBookingBuilder().WithStatus(st)
			b := bb.BuildDomain()

			err := b.AddReview(bb.UserID, 5, "nice", later)
			require.ErrorIs(t, err, booking.ErrNotCompleted)
			assert.True(t, errs.Is(err, errs.ErrConflict))
			assert.False(t, b.HasRating())
			assert.Nil(t, b.ReviewText())
			assert.Equal(t, bb.UpdatedAt, b.UpdatedAt())
		}
	})

	t.Run("only the customer", func(t *testing.T) {
		b := builder.NewBookingBuilder().AsCompleted().BuildDomain()
		err := b.AddReview(uuid.New(), 5, "", later)
		require.ErrorIs(t, err, booking.ErrNotCustomer)
		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
	})

	t.Run("rating bounds", func(t *testing.T) {
		for _, r := range []int{0, 6, -1} {
			bb := builder.NewBookingBuilder().AsCompleted()
			b := bb.BuildDomain()
			err := b.AddReview(bb.UserID, r, "", later)
			require.ErrorIs(t, err, booking.ErrInvalidRating)
			assert.False(t, b.HasRating())
		}
	})

	t.Run("review too long", func(t *testing.T) {
		bb := builder.NewBookingBuilder().AsCompleted()
		b := bb.BuildDomain()
		err := b.AddReview(bb.UserID, 3, makeString(booking.MaxReviewLength+1), later)
		require.ErrorIs(t, err, booking.ErrReviewTooLong)
	})
}

func TestCanAccess(t *testing.T) {
	bb := builder.NewBookingBuilder()
	b := bb.BuildDomain()
	ownerID := uuid.New()

	assert.True(t, b.CanAccess(user.Caller{ID: bb.UserID, Role: user.RoleUser}, ownerID))
	assert.True(t, b.CanAccess(user.Caller{ID: ownerID, Role: user.RoleBusiness}, ownerID))
	assert.True(t, b.CanAccess(user.Caller{ID: uuid.New(), Role: user.RoleAdmin}, ownerID))
	assert.False(t, b.CanAccess(user.Caller{ID: uuid.New(), Role: user.RoleBusiness}, ownerID))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildNew()
			require.Error(t, err)
			require.Nil(t, actual)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
			}
			if c.kind != nil {
				assert.True(t, errs.Is(err, c.kind))
			}
		})
	}
}

func makeString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a'
	}
	return string(b)
}
