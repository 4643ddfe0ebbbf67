package shared

import (
	"context"

	"marketplace-api/internal/domain/booking"
	"marketplace-api/internal/domain/business"
	"marketplace-api/internal/domain/rating"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Businesses() BusinessRepository
	Services() ServiceRepository
	Ratings() RatingRepository
	Reads() CommandReads
}

// CommandReads loads aggregates for the write side. Missing rows come back as
// infra.RepositoryError of kind NOT_FOUND.
type CommandReads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	BusinessByID(ctx context.Context, id uuid.UUID) (*business.Business, error)
	ServiceByID(ctx context.Context, id uuid.UUID) (*business.Service, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BusinessRepository writes the whole business row, including the employee
// roster and working hours documents.
type BusinessRepository interface {
	Create(ctx context.Context, b *business.Business) error
	Update(ctx context.Context, b *business.Business) error
}

type ServiceRepository interface {
	Create(ctx context.Context, s *business.Service) error
	Update(ctx context.Context, s *business.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RatingRepository interface {
	// Recompute rescans every rated booking of the business and stores the
	// new aggregate on the business row.
	Recompute(ctx context.Context, businessID uuid.UUID) (rating.Summary, error)
}
