package readstore

import (
	"context"

	"marketplace-api/internal/domain/schedule"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/query"
	"marketplace-api/internal/pkg/pgconv"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, db query.DBTX, id uuid.UUID) (query.BookingViewRow, error)
	ListBookingsByUser(ctx context.Context, db query.DBTX, arg query.ListBookingsByUserParams) ([]query.BookingViewRow, error)
	CountBookingsByUser(ctx context.Context, db query.DBTX, userID uuid.UUID) (int64, error)
	ListBookingsByBusiness(ctx context.Context, db query.DBTX, arg query.ListBookingsByBusinessParams) ([]query.BookingViewRow, error)
	CountBookingsByBusiness(ctx context.Context, db query.DBTX, arg query.CountBookingsByBusinessParams) (int64, error)
	ListBookedStartTimes(ctx context.Context, db query.DBTX, arg query.ListBookedStartTimesParams) ([]string, error)
	GetBookingStatusStats(ctx context.Context, db query.DBTX, businessID uuid.UUID) ([]query.GetBookingStatusStatsRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      query.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db query.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByUser(ctx, r.db, query.ListBookingsByUserParams{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := r.queries.CountBookingsByUser(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings by user", err)
	}
	return n, nil
}

func (r *BookingReadStore) ListByBusiness(ctx context.Context, businessID uuid.UUID, f queries.BookingFilter, limit, offset int32) ([]*queries.BookingView, error) {
	date, status := filterParams(f)
	rows, err := r.queries.ListBookingsByBusiness(ctx, r.db, query.ListBookingsByBusinessParams{
		BusinessID: businessID,
		Date:       date,
		Status:     status,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by business", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) CountByBusiness(ctx context.Context, businessID uuid.UUID, f queries.BookingFilter) (int64, error) {
	date, status := filterParams(f)
	n, err := r.queries.CountBookingsByBusiness(ctx, r.db, query.CountBookingsByBusinessParams{
		BusinessID: businessID,
		Date:       date,
		Status:     status,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings by business", err)
	}
	return n, nil
}

func (r *BookingReadStore) BookedStartTimes(ctx context.Context, businessID uuid.UUID, date schedule.Date) ([]string, error) {
	starts, err := r.queries.ListBookedStartTimes(ctx, r.db, query.ListBookedStartTimesParams{
		BusinessID:  businessID,
		BookingDate: pgtype.Date{Time: date.Time(), Valid: true},
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked start times", err)
	}
	return starts, nil
}

func (r *BookingReadStore) StatusStats(ctx context.Context, businessID uuid.UUID) ([]queries.StatusStat, error) {
	rows, err := r.queries.GetBookingStatusStats(ctx, r.db, businessID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking status stats", err)
	}
	stats := make([]queries.StatusStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, queries.StatusStat{
			Status:      row.Status,
			Count:       row.Bookings,
			PaidRevenue: row.PaidRevenue,
		})
	}
	return stats, nil
}

func filterParams(f queries.BookingFilter) (pgtype.Date, pgtype.Text) {
	var date pgtype.Date
	if f.Date != nil {
		date = pgtype.Date{Time: f.Date.Time(), Valid: true}
	}
	return date, pgconv.StringPtrToPgtype(f.Status)
}

func toBookingViews(rows []query.BookingViewRow) []*queries.BookingView {
	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBookingView(row))
	}
	return views
}

func toBookingView(row query.BookingViewRow) *queries.BookingView {
	return &queries.BookingView{
		ID:                     row.ID,
		UserID:                 row.UserID,
		BusinessID:             row.BusinessID,
		BusinessName:           row.BusinessName,
		BusinessOwnerID:        row.BusinessOwnerID,
		ServiceID:              pgconv.UUIDPtrFromPgtype(row.ServiceID),
		ServiceName:            row.ServiceName,
		ServicePriceCents:      row.ServicePriceCents,
		ServiceDurationMinutes: int(row.ServiceDurationMinutes),
		Date:                   pgconv.DateFromPgtype(row.BookingDate),
		StartTime:              row.StartTime,
		EndTime:                row.EndTime,
		Status:                 row.Status,
		PaymentStatus:          row.PaymentStatus,
		TotalPriceCents:        row.TotalPriceCents,
		Rating:                 pgconv.IntPtrFromPgtype(row.Rating),
		Review:                 pgconv.StringPtrFromPgtype(row.Review),
		CancellationReason:     pgconv.StringPtrFromPgtype(row.CancellationReason),
		Notes:                  pgconv.StringPtrFromPgtype(row.Notes),
		CreatedAt:              pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:              pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
