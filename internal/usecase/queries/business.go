package queries

import (
	"context"

	"marketplace-api/internal/domain/booking"
	"marketplace-api/internal/domain/business"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type BusinessReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BusinessView, error)
}

type ServiceReadStore interface {
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*ServiceView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
}

type BusinessQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BusinessView, error)
	Employees(ctx context.Context, businessID uuid.UUID) ([]business.Employee, error)
	Services(ctx context.Context, businessID uuid.UUID) ([]*ServiceView, error)
	Service(ctx context.Context, businessID, serviceID uuid.UUID) (*ServiceView, error)
	Analytics(ctx context.Context, businessID uuid.UUID) (*AnalyticsView, error)
}

type businessQueriesImpl struct {
	businesses BusinessReadStore
	services   ServiceReadStore
	bookings   BookingReadStore
}

func NewBusinessQueries(businesses BusinessReadStore, services ServiceReadStore, bookings BookingReadStore) BusinessQueries {
	return &businessQueriesImpl{businesses: businesses, services: services, bookings: bookings}
}

func (q *businessQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BusinessView, error) {
	v, err := q.businesses.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NotFoundAs(err, shared.ErrBusinessNotFound)
	}
	return v, nil
}

func (q *businessQueriesImpl) Employees(ctx context.Context, businessID uuid.UUID) ([]business.Employee, error) {
	v, err := q.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if v.Employees == nil {
		return []business.Employee{}, nil
	}
	return v.Employees, nil
}

func (q *businessQueriesImpl) Services(ctx context.Context, businessID uuid.UUID) ([]*ServiceView, error) {
	if _, err := q.GetByID(ctx, businessID); err != nil {
		return nil, err
	}
	return q.services.ListByBusiness(ctx, businessID)
}

func (q *businessQueriesImpl) Service(ctx context.Context, businessID, serviceID uuid.UUID) (*ServiceView, error) {
	v, err := q.services.FindByID(ctx, serviceID)
	if err != nil {
		return nil, shared.NotFoundAs(err, shared.ErrServiceNotFound)
	}
	if v.BusinessID != businessID {
		return nil, shared.ErrServiceNotFound
	}
	return v, nil
}

func (q *businessQueriesImpl) Analytics(ctx context.Context, businessID uuid.UUID) (*AnalyticsView, error) {
	biz, err := q.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	stats, err := q.bookings.StatusStats(ctx, businessID)
	if err != nil {
		return nil, err
	}

	out := &AnalyticsView{
		BusinessID:       businessID,
		BookingsByStatus: make(map[string]int64, 4),
		Rating:           biz.Rating,
		NumReviews:       biz.NumReviews,
	}
	for _, s := range booking.AllStatuses() {
		out.BookingsByStatus[s.String()] = 0
	}
	for _, s := range stats {
		out.BookingsByStatus[s.Status] += s.Count
		out.TotalBookings += s.Count
		out.RevenueCents += s.PaidRevenue
	}
	return out, nil
}
