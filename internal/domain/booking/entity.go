package booking

import (
	"time"

	"marketplace-api/internal/domain/schedule"
	"marketplace-api/internal/domain/user"

	"github.com/google/uuid"
)

type Booking struct {
	id                 uuid.UUID
	userID             uuid.UUID
	businessID         uuid.UUID
	service            ServiceSnapshot
	date               schedule.Date
	startTime          schedule.TimeOfDay
	endTime            schedule.TimeOfDay
	status             Status
	paymentStatus      PaymentStatus
	totalPriceCents    int64
	rating             *Rating
	review             *Review
	cancellationReason *string
	notes              *string
	createdAt          time.Time
	updatedAt          time.Time
}

type NewParams struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	Service    ServiceSnapshot
	Date       string
	StartTime  string
	EndTime    *string
	Notes      *string
}

// NewBooking starts a pending, unpaid booking. The price is taken from the
// service snapshot and never recomputed. No availability check happens here:
// two bookings for the same slot are both accepted.
func NewBooking(p NewParams, now time.Time) (*Booking, error) {
	date, err := schedule.ParseDate(p.Date)
	if err != nil {
		return nil, err
	}
	start, err := schedule.ParseTimeOfDay(p.StartTime)
	if err != nil {
		return nil, err
	}

	var end schedule.TimeOfDay
	if p.EndTime != nil && *p.EndTime != "" {
		end, err = schedule.ParseTimeOfDay(*p.EndTime)
		if err != nil {
			return nil, err
		}
	} else {
		var ok bool
		end, ok = start.Add(time.Duration(p.Service.DurationMinutes) * time.Minute)
		if !ok {
			return nil, ErrInvalidTimeRange
		}
	}
	if !start.Before(end) {
		return nil, ErrInvalidTimeRange
	}

	notes, err := trimmedOptional(p.Notes, MaxNotesLength, ErrNotesTooLong)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:              uuid.New(),
		userID:          p.UserID,
		businessID:      p.BusinessID,
		service:         p.Service,
		date:            date,
		startTime:       start,
		endTime:         end,
		status:          StatusPending,
		paymentStatus:   PaymentPending,
		totalPriceCents: p.Service.PriceCents,
		notes:           notes,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

type ReconstructParams struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	BusinessID         uuid.UUID
	Service            ServiceSnapshot
	Date               schedule.Date
	StartTime          schedule.TimeOfDay
	EndTime            schedule.TimeOfDay
	Status             Status
	PaymentStatus      PaymentStatus
	TotalPriceCents    int64
	Rating             *int
	Review             *string
	CancellationReason *string
	Notes              *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func Reconstruct(p ReconstructParams) *Booking {
	b := &Booking{
		id:                 p.ID,
		userID:             p.UserID,
		businessID:         p.BusinessID,
		service:            p.Service,
		date:               p.Date,
		startTime:          p.StartTime,
		endTime:            p.EndTime,
		status:             p.Status,
		paymentStatus:      p.PaymentStatus,
		totalPriceCents:    p.TotalPriceCents,
		cancellationReason: p.CancellationReason,
		notes:              p.Notes,
		createdAt:          p.CreatedAt,
		updatedAt:          p.UpdatedAt,
	}
	if p.Rating != nil {
		b.rating = &Rating{value: *p.Rating}
	}
	if p.Review != nil {
		b.review = &Review{text: *p.Review}
	}
	return b
}

// CanAccess reports whether caller may read or update the booking: its
// customer, the owner of its business, or an admin.
func (b *Booking) CanAccess(caller user.Caller, businessOwnerID uuid.UUID) bool {
	return caller.IsAdmin() || caller.ID == b.userID || caller.ID == businessOwnerID
}

// ChangeStatus accepts any known status from any state. It reports whether
// anything changed; repeating the current status without a new reason is a
// no-op that leaves updatedAt alone.
func (b *Booking) ChangeStatus(to Status, reason *string, now time.Time) (bool, error) {
	if !to.IsValid() {
		return false, ErrInvalidStatus
	}
	r, err := trimmedOptional(reason, MaxReasonLength, ErrReasonTooLong)
	if err != nil {
		return false, err
	}

	changed := false
	if b.status != to {
		b.status = to
		changed = true
	}
	if r != nil && (b.cancellationReason == nil || *b.cancellationReason != *r) {
		b.cancellationReason = r
		changed = true
	}
	if changed {
		b.updatedAt = now
	}
	return changed, nil
}

// AddReview sets or replaces the rating and review. Only the customer may
// review, and only once the booking is completed.
func (b *Booking) AddReview(callerID uuid.UUID, rating int, text string, now time.Time) error {
	if callerID != b.userID {
		return ErrNotCustomer
	}
	if b.status != StatusCompleted {
		return ErrNotCompleted
	}
	r, err := NewRating(rating)
	if err != nil {
		return err
	}
	rv, err := NewReview(text)
	if err != nil {
		return err
	}
	b.rating = &r
	b.review = &rv
	b.updatedAt = now
	return nil
}

func (b *Booking) HasRating() bool { return b.rating != nil }

func (b *Booking) RatingValue() *int {
	if b.rating == nil {
		return nil
	}
	v := b.rating.Value()
	return &v
}

func (b *Booking) ReviewText() *string {
	if b.review == nil {
		return nil
	}
	s := b.review.String()
	return &s
}

func (b *Booking) ID() uuid.UUID                 { return b.id }
func (b *Booking) UserID() uuid.UUID             { return b.userID }
func (b *Booking) BusinessID() uuid.UUID         { return b.businessID }
func (b *Booking) Service() ServiceSnapshot      { return b.service }
func (b *Booking) Date() schedule.Date           { return b.date }
func (b *Booking) StartTime() schedule.TimeOfDay { return b.startTime }
func (b *Booking) EndTime() schedule.TimeOfDay   { return b.endTime }
func (b *Booking) Status() Status                { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus  { return b.paymentStatus }
func (b *Booking) TotalPriceCents() int64        { return b.totalPriceCents }
func (b *Booking) CancellationReason() *string   { return b.cancellationReason }
func (b *Booking) Notes() *string                { return b.notes }
func (b *Booking) CreatedAt() time.Time          { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time          { return b.updatedAt }
