package queries

import (
	"context"
	"iter"
	"strings"
	"time"

	"marketplace-api/internal/domain/availability"
	"marketplace-api/internal/domain/booking"
	"marketplace-api/internal/domain/schedule"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDateRequired = errs.Validation("date query parameter is required")

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*BookingView, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID, f BookingFilter, limit, offset int32) ([]*BookingView, error)
	CountByBusiness(ctx context.Context, businessID uuid.UUID, f BookingFilter) (int64, error)
	// BookedStartTimes returns the "HH:MM" starts of the day's bookings that
	// are not cancelled.
	BookedStartTimes(ctx context.Context, businessID uuid.UUID, date schedule.Date) ([]string, error)
	StatusStats(ctx context.Context, businessID uuid.UUID) ([]StatusStat, error)
}

// AvailableSlots is a lazily evaluated slot list. Slots may be ranged over
// more than once; each pass recomputes from the same inputs.
type AvailableSlots struct {
	BusinessID uuid.UUID
	Date       schedule.Date
	Slots      iter.Seq[time.Time]
}

type BookingQueries interface {
	GetByID(ctx context.Context, caller user.Caller, id uuid.UUID) (*BookingView, error)
	ListMine(ctx context.Context, caller user.Caller, page PageRequest) (Page[*BookingView], error)
	ListForBusiness(ctx context.Context, businessID uuid.UUID, f BookingFilter, page PageRequest) (Page[*BookingView], error)
	AvailableSlots(ctx context.Context, businessID uuid.UUID, date string) (*AvailableSlots, error)
}

type bookingQueriesImpl struct {
	bookings   BookingReadStore
	businesses BusinessReadStore
	paging     Paging
}

func NewBookingQueries(bookings BookingReadStore, businesses BusinessReadStore, paging Paging) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, businesses: businesses, paging: paging}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, caller user.Caller, id uuid.UUID) (*BookingView, error) {
	v, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NotFoundAs(err, shared.ErrBookingNotFound)
	}
	if !caller.IsAdmin() && caller.ID != v.UserID && caller.ID != v.BusinessOwnerID {
		return nil, booking.ErrAccessDenied
	}
	return v, nil
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, caller user.Caller, page PageRequest) (Page[*BookingView], error) {
	page, err := q.paging.Normalize(page)
	if err != nil {
		return Page[*BookingView]{}, err
	}
	total, err := q.bookings.CountByUser(ctx, caller.ID)
	if err != nil {
		return Page[*BookingView]{}, err
	}
	items, err := q.bookings.ListByUser(ctx, caller.ID, int32(page.Limit), page.Offset())
	if err != nil {
		return Page[*BookingView]{}, err
	}
	return NewPage(items, total, page), nil
}

func (q *bookingQueriesImpl) ListForBusiness(ctx context.Context, businessID uuid.UUID, f BookingFilter, page PageRequest) (Page[*BookingView], error) {
	if f.Status != nil {
		if _, err := booking.ParseStatus(*f.Status); err != nil {
			return Page[*BookingView]{}, err
		}
	}
	page, err := q.paging.Normalize(page)
	if err != nil {
		return Page[*BookingView]{}, err
	}
	total, err := q.bookings.CountByBusiness(ctx, businessID, f)
	if err != nil {
		return Page[*BookingView]{}, err
	}
	items, err := q.bookings.ListByBusiness(ctx, businessID, f, int32(page.Limit), page.Offset())
	if err != nil {
		return Page[*BookingView]{}, err
	}
	return NewPage(items, total, page), nil
}

func (q *bookingQueriesImpl) AvailableSlots(ctx context.Context, businessID uuid.UUID, date string) (*AvailableSlots, error) {
	if strings.TrimSpace(date) == "" {
		return nil, ErrDateRequired
	}
	day, err := schedule.ParseDate(date)
	if err != nil {
		return nil, err
	}
	biz, err := q.businesses.FindByID(ctx, businessID)
	if err != nil {
		return nil, shared.NotFoundAs(err, shared.ErrBusinessNotFound)
	}
	booked, err := q.bookings.BookedStartTimes(ctx, businessID, day)
	if err != nil {
		return nil, err
	}
	slots, err := availability.ComputeFreeSlots(biz.WorkingHours, day, booked)
	if err != nil {
		return nil, err
	}
	return &AvailableSlots{BusinessID: businessID, Date: day, Slots: slots}, nil
}
