package repository

import (
	"context"

	"marketplace-api/internal/domain/booking"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/query"
	"marketplace-api/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db query.DBTX, arg query.CreateBookingParams) error
	GetBooking(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Booking, error)
	UpdateBooking(ctx context.Context, db query.DBTX, arg query.UpdateBookingParams) (int64, error)
	DeleteBooking(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      query.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db query.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBooking(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	rows, err := r.queries.UpdateBooking(ctx, r.db, converter.BookingToUpdateParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if rows == 0 {
		return infra.NotFound("booking not found")
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := r.queries.DeleteBooking(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if rows == 0 {
		return infra.NotFound("booking not found")
	}
	return nil
}
