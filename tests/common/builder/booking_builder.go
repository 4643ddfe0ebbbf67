//go:build unit || e2e

package builder

import (
	"time"

	"marketplace-api/internal/domain/booking"
	"marketplace-api/internal/domain/schedule"
	reqdto "marketplace-api/internal/handler/dto/request"
	"marketplace-api/internal/infra/query"
	"marketplace-api/internal/pkg/pgconv"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	BusinessID         uuid.UUID
	ServiceID          uuid.UUID
	ServiceName        string
	PriceCents         int64
	DurationMinutes    int
	Date               string
	StartTime          string
	EndTime            string
	Status             booking.Status
	PaymentStatus      booking.PaymentStatus
	Rating             *int
	Review             *string
	CancellationReason *string
	Notes              *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		BusinessID:      uuid.New(),
		ServiceID:       uuid.New(),
		ServiceName:     "Haircut",
		PriceCents:      2500,
		DurationMinutes: 30,
		Date:            "2025-06-02",
		StartTime:       "09:00",
		EndTime:         "09:30",
		Status:          booking.StatusPending,
		PaymentStatus:   booking.PaymentPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Snapshot() booking.ServiceSnapshot {
	return booking.ServiceSnapshot{
		ID:              b.ServiceID,
		Name:            b.ServiceName,
		PriceCents:      b.PriceCents,
		DurationMinutes: b.DurationMinutes,
	}
}

// Build methods
func (b *BookingBuilder) BuildNew() (*booking.Booking, error) {
	end := b.EndTime
	return booking.NewBooking(booking.NewParams{
		UserID:     b.UserID,
		BusinessID: b.BusinessID,
		Service:    b.Snapshot(),
		Date:       b.Date,
		StartTime:  b.StartTime,
		EndTime:    &end,
		Notes:      b.Notes,
	}, b.CreatedAt)
}

// BuildDomain reconstructs a booking in whatever state the builder holds.
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	date, err := schedule.ParseDate(b.Date)
	if err != nil {
		panic(err)
	}
	start, err := schedule.ParseTimeOfDay(b.StartTime)
	if err != nil {
		panic(err)
	}
	end, err := schedule.ParseTimeOfDay(b.EndTime)
	if err != nil {
		panic(err)
	}
	return booking.Reconstruct(booking.ReconstructParams{
		ID:                 b.ID,
		UserID:             b.UserID,
		BusinessID:         b.BusinessID,
		Service:            b.Snapshot(),
		Date:               date,
		StartTime:          start,
		EndTime:            end,
		Status:             b.Status,
		PaymentStatus:      b.PaymentStatus,
		TotalPriceCents:    b.PriceCents,
		Rating:             b.Rating,
		Review:             b.Review,
		CancellationReason: b.CancellationReason,
		Notes:              b.Notes,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	})
}

func (b *BookingBuilder) BuildInfra() query.Booking {
	day, err := pgconv.DateToPgtype(b.Date)
	if err != nil {
		panic(err)
	}
	return query.Booking{
		ID:                     b.ID,
		UserID:                 b.UserID,
		BusinessID:             b.BusinessID,
		ServiceID:              serviceRef(b.ServiceID),
		ServiceName:            b.ServiceName,
		ServicePriceCents:      b.PriceCents,
		ServiceDurationMinutes: int32(b.DurationMinutes),
		BookingDate:            day,
		StartTime:              b.StartTime,
		EndTime:                b.EndTime,
		Status:                 string(b.Status),
		PaymentStatus:          string(b.PaymentStatus),
		TotalPriceCents:        b.PriceCents,
		Rating:                 pgconv.IntPtrToPgtype(b.Rating),
		Review:                 pgconv.StringPtrToPgtype(b.Review),
		CancellationReason:     pgconv.StringPtrToPgtype(b.CancellationReason),
		Notes:                  pgconv.StringPtrToPgtype(b.Notes),
		CreatedAt:              pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:              pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

// BuildViewRow is the joined row the read side scans; ownerID is the owner of
// the booking's business.
func (b *BookingBuilder) BuildViewRow(businessName string, ownerID uuid.UUID) query.BookingViewRow {
	r := b.BuildInfra()
	return query.BookingViewRow{
		ID:                     r.ID,
		UserID:                 r.UserID,
		BusinessID:             r.BusinessID,
		BusinessName:           businessName,
		BusinessOwnerID:        ownerID,
		ServiceID:              r.ServiceID,
		ServiceName:            r.ServiceName,
		ServicePriceCents:      r.ServicePriceCents,
		ServiceDurationMinutes: r.ServiceDurationMinutes,
		BookingDate:            r.BookingDate,
		StartTime:              r.StartTime,
		EndTime:                r.EndTime,
		Status:                 r.Status,
		PaymentStatus:          r.PaymentStatus,
		TotalPriceCents:        r.TotalPriceCents,
		Rating:                 r.Rating,
		Review:                 r.Review,
		CancellationReason:     r.CancellationReason,
		Notes:                  r.Notes,
		CreatedAt:              r.CreatedAt,
		UpdatedAt:              r.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildView(businessName string, ownerID uuid.UUID) *queries.BookingView {
	v := &queries.BookingView{
		ID:                     b.ID,
		UserID:                 b.UserID,
		BusinessID:             b.BusinessID,
		BusinessName:           businessName,
		BusinessOwnerID:        ownerID,
		ServiceName:            b.ServiceName,
		ServicePriceCents:      b.PriceCents,
		ServiceDurationMinutes: b.DurationMinutes,
		Date:                   b.Date,
		StartTime:              b.StartTime,
		EndTime:                b.EndTime,
		Status:                 string(b.Status),
		PaymentStatus:          string(b.PaymentStatus),
		TotalPriceCents:        b.PriceCents,
		Rating:                 b.Rating,
		Review:                 b.Review,
		CancellationReason:     b.CancellationReason,
		Notes:                  b.Notes,
		CreatedAt:              b.CreatedAt,
		UpdatedAt:              b.UpdatedAt,
	}
	if b.ServiceID != uuid.Nil {
		id := b.ServiceID
		v.ServiceID = &id
	}
	return v
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		BusinessID: b.BusinessID,
		ServiceID:  b.ServiceID,
		Date:       b.Date,
		StartTime:  b.StartTime,
		Notes:      b.Notes,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithBusinessID(id uuid.UUID) *BookingBuilder {
	b.BusinessID = id
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithSlot(date, start, end string) *BookingBuilder {
	b.Date = date
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithRating(rating int) *BookingBuilder {
	b.Rating = &rating
	return b
}

func (b *BookingBuilder) WithoutService() *BookingBuilder {
	b.ServiceID = uuid.Nil
	return b
}

func (b *BookingBuilder) AsCompleted() *BookingBuilder {
	b.Status = booking.StatusCompleted
	b.PaymentStatus = booking.PaymentPaid
	return b
}

func serviceRef(id uuid.UUID) pgtype.UUID {
	if id == uuid.Nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: id, Valid: true}
}
