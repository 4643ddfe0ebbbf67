package converter

import (
	"marketplace-api/internal/domain/booking"
	"marketplace-api/internal/domain/schedule"
	"marketplace-api/internal/infra/query"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) query.CreateBookingParams {
	svc := b.Service()
	return query.CreateBookingParams{
		ID:                     b.ID(),
		UserID:                 b.UserID(),
		BusinessID:             b.BusinessID(),
		ServiceID:              serviceIDToPgtype(svc.ID),
		ServiceName:            svc.Name,
		ServicePriceCents:      svc.PriceCents,
		ServiceDurationMinutes: int32(svc.DurationMinutes), // #nosec G115 -- minutes within a day
		BookingDate:            pgtype.Date{Time: b.Date().Time(), Valid: true},
		StartTime:              b.StartTime().String(),
		EndTime:                b.EndTime().String(),
		Status:                 string(b.Status()),
		PaymentStatus:          string(b.PaymentStatus()),
		TotalPriceCents:        b.TotalPriceCents(),
		Rating:                 pgconv.IntPtrToPgtype(b.RatingValue()),
		Review:                 pgconv.StringPtrToPgtype(b.ReviewText()),
		CancellationReason:     pgconv.StringPtrToPgtype(b.CancellationReason()),
		Notes:                  pgconv.StringPtrToPgtype(b.Notes()),
		CreatedAt:              pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:              pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking) query.UpdateBookingParams {
	return query.UpdateBookingParams{
		ID:                 b.ID(),
		Status:             string(b.Status()),
		PaymentStatus:      string(b.PaymentStatus()),
		Rating:             pgconv.IntPtrToPgtype(b.RatingValue()),
		Review:             pgconv.StringPtrToPgtype(b.ReviewText()),
		CancellationReason: pgconv.StringPtrToPgtype(b.CancellationReason()),
		Notes:              pgconv.StringPtrToPgtype(b.Notes()),
		UpdatedAt:          pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

// BookingFromRow rebuilds the aggregate. A row whose times do not parse is
// reported as an error rather than silently zeroed.
func BookingFromRow(row query.Booking) (*booking.Booking, error) {
	start, err := schedule.ParseTimeOfDay(row.StartTime)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s start_time", row.ID)
	}
	end, err := schedule.ParseTimeOfDay(row.EndTime)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s end_time", row.ID)
	}

	return booking.Reconstruct(booking.ReconstructParams{
		ID:         row.ID,
		UserID:     row.UserID,
		BusinessID: row.BusinessID,
		Service: booking.ServiceSnapshot{
			ID:              serviceIDFromPgtype(row.ServiceID),
			Name:            row.ServiceName,
			PriceCents:      row.ServicePriceCents,
			DurationMinutes: int(row.ServiceDurationMinutes),
		},
		Date:               schedule.DateOf(row.BookingDate.Time),
		StartTime:          start,
		EndTime:            end,
		Status:             booking.Status(row.Status),
		PaymentStatus:      booking.PaymentStatus(row.PaymentStatus),
		TotalPriceCents:    row.TotalPriceCents,
		Rating:             pgconv.IntPtrFromPgtype(row.Rating),
		Review:             pgconv.StringPtrFromPgtype(row.Review),
		CancellationReason: pgconv.StringPtrFromPgtype(row.CancellationReason),
		Notes:              pgconv.StringPtrFromPgtype(row.Notes),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

// The snapshot uses uuid.Nil once the service row is gone.
func serviceIDToPgtype(id uuid.UUID) pgtype.UUID {
	if id == uuid.Nil {
		return pgtype.UUID{}
	}
	return pgconv.UUIDPtrToPgtype(&id)
}

func serviceIDFromPgtype(pu pgtype.UUID) uuid.UUID {
	if id := pgconv.UUIDPtrFromPgtype(pu); id != nil {
		return *id
	}
	return uuid.Nil
}
