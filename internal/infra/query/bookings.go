package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createBooking = `-- name: CreateBooking :exec
INSERT INTO bookings (
    id, user_id, business_id, service_id, service_name, service_price_cents, service_duration_minutes,
    booking_date, start_time, end_time, status, payment_status, total_price_cents,
    rating, review, cancellation_reason, notes, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
`

type CreateBookingParams struct {
	ID                     uuid.UUID          `json:"id"`
	UserID                 uuid.UUID          `json:"user_id"`
	BusinessID             uuid.UUID          `json:"business_id"`
	ServiceID              pgtype.UUID        `json:"service_id"`
	ServiceName            string             `json:"service_name"`
	ServicePriceCents      int64              `json:"service_price_cents"`
	ServiceDurationMinutes int32              `json:"service_duration_minutes"`
	BookingDate            pgtype.Date        `json:"booking_date"`
	StartTime              string             `json:"start_time"`
	EndTime                string             `json:"end_time"`
	Status                 string             `json:"status"`
	PaymentStatus          string             `json:"payment_status"`
	TotalPriceCents        int64              `json:"total_price_cents"`
	Rating                 pgtype.Int4        `json:"rating"`
	Review                 pgtype.Text        `json:"review"`
	CancellationReason     pgtype.Text        `json:"cancellation_reason"`
	Notes                  pgtype.Text        `json:"notes"`
	CreatedAt              pgtype.Timestamptz `json:"created_at"`
	UpdatedAt              pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID,
		arg.UserID,
		arg.BusinessID,
		arg.ServiceID,
		arg.ServiceName,
		arg.ServicePriceCents,
		arg.ServiceDurationMinutes,
		arg.BookingDate,
		arg.StartTime,
		arg.EndTime,
		arg.Status,
		arg.PaymentStatus,
		arg.TotalPriceCents,
		arg.Rating,
		arg.Review,
		arg.CancellationReason,
		arg.Notes,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getBooking = `-- name: GetBooking :one
SELECT id, user_id, business_id, service_id, service_name, service_price_cents, service_duration_minutes,
       booking_date, start_time, end_time, status, payment_status, total_price_cents,
       rating, review, cancellation_reason, notes, created_at, updated_at
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBooking(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	row := db.QueryRow(ctx, getBooking, id)
	var i Booking
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.BusinessID,
		&i.ServiceID,
		&i.ServiceName,
		&i.ServicePriceCents,
		&i.ServiceDurationMinutes,
		&i.BookingDate,
		&i.StartTime,
		&i.EndTime,
		&i.Status,
		&i.PaymentStatus,
		&i.TotalPriceCents,
		&i.Rating,
		&i.Review,
		&i.CancellationReason,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateBooking = `-- name: UpdateBooking :execrows
UPDATE bookings
SET status = $2,
    payment_status = $3,
    rating = $4,
    review = $5,
    cancellation_reason = $6,
    notes = $7,
    updated_at = $8
WHERE id = $1
`

type UpdateBookingParams struct {
	ID                 uuid.UUID          `json:"id"`
	Status             string             `json:"status"`
	PaymentStatus      string             `json:"payment_status"`
	Rating             pgtype.Int4        `json:"rating"`
	Review             pgtype.Text        `json:"review"`
	CancellationReason pgtype.Text        `json:"cancellation_reason"`
	Notes              pgtype.Text        `json:"notes"`
	UpdatedAt          pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateBooking(ctx context.Context, db DBTX, arg UpdateBookingParams) (int64, error) {
	result, err := db.Exec(ctx, updateBooking,
		arg.ID,
		arg.Status,
		arg.PaymentStatus,
		arg.Rating,
		arg.Review,
		arg.CancellationReason,
		arg.Notes,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteBooking = `-- name: DeleteBooking :execrows
DELETE FROM bookings WHERE id = $1
`

func (q *Queries) DeleteBooking(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteBooking, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listBusinessRatings = `-- name: ListBusinessRatings :many
SELECT rating::int
FROM bookings
WHERE business_id = $1
  AND rating IS NOT NULL
`

// Every rated booking counts, whatever its current status.
func (q *Queries) ListBusinessRatings(ctx context.Context, db DBTX, businessID uuid.UUID) ([]int32, error) {
	rows, err := db.Query(ctx, listBusinessRatings, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []int32
	for rows.Next() {
		var rating int32
		if err := rows.Scan(&rating); err != nil {
			return nil, err
		}
		items = append(items, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const bookingViewColumns = `b.id, b.user_id, b.business_id, biz.name, biz.owner_id,
       b.service_id, b.service_name, b.service_price_cents, b.service_duration_minutes,
       b.booking_date, b.start_time, b.end_time, b.status, b.payment_status, b.total_price_cents,
       b.rating, b.review, b.cancellation_reason, b.notes, b.created_at, b.updated_at`

type BookingViewRow struct {
	ID                     uuid.UUID          `json:"id"`
	UserID                 uuid.UUID          `json:"user_id"`
	BusinessID             uuid.UUID          `json:"business_id"`
	BusinessName           string             `json:"business_name"`
	BusinessOwnerID        uuid.UUID          `json:"business_owner_id"`
	ServiceID              pgtype.UUID        `json:"service_id"`
	ServiceName            string             `json:"service_name"`
	ServicePriceCents      int64              `json:"service_price_cents"`
	ServiceDurationMinutes int32              `json:"service_duration_minutes"`
	BookingDate            pgtype.Date        `json:"booking_date"`
	StartTime              string             `json:"start_time"`
	EndTime                string             `json:"end_time"`
	Status                 string             `json:"status"`
	PaymentStatus          string             `json:"payment_status"`
	TotalPriceCents        int64              `json:"total_price_cents"`
	Rating                 pgtype.Int4        `json:"rating"`
	Review                 pgtype.Text        `json:"review"`
	CancellationReason     pgtype.Text        `json:"cancellation_reason"`
	Notes                  pgtype.Text        `json:"notes"`
	CreatedAt              pgtype.Timestamptz `json:"created_at"`
	UpdatedAt              pgtype.Timestamptz `json:"updated_at"`
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingView(r rowScanner) (BookingViewRow, error) {
	var i BookingViewRow
	err := r.Scan(
		&i.ID,
		&i.UserID,
		&i.BusinessID,
		&i.BusinessName,
		&i.BusinessOwnerID,
		&i.ServiceID,
		&i.ServiceName,
		&i.ServicePriceCents,
		&i.ServiceDurationMinutes,
		&i.BookingDate,
		&i.StartTime,
		&i.EndTime,
		&i.Status,
		&i.PaymentStatus,
		&i.TotalPriceCents,
		&i.Rating,
		&i.Review,
		&i.CancellationReason,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getBookingView = `-- name: GetBookingView :one
SELECT ` + bookingViewColumns + `
FROM bookings b
JOIN businesses biz ON biz.id = b.business_id
WHERE b.id = $1
`

func (q *Queries) GetBookingView(ctx context.Context, db DBTX, id uuid.UUID) (BookingViewRow, error) {
	return scanBookingView(db.QueryRow(ctx, getBookingView, id))
}

const listBookingsByUser = `-- name: ListBookingsByUser :many
SELECT ` + bookingViewColumns + `
FROM bookings b
JOIN businesses biz ON biz.id = b.business_id
WHERE b.user_id = $1
ORDER BY b.created_at DESC, b.id DESC
LIMIT $2 OFFSET $3
`

type ListBookingsByUserParams struct {
	UserID uuid.UUID `json:"user_id"`
	Limit  int32     `json:"limit"`
	Offset int32     `json:"offset"`
}

func (q *Queries) ListBookingsByUser(ctx context.Context, db DBTX, arg ListBookingsByUserParams) ([]BookingViewRow, error) {
	return q.listBookingViews(ctx, db, listBookingsByUser, arg.UserID, arg.Limit, arg.Offset)
}

const countBookingsByUser = `-- name: CountBookingsByUser :one
SELECT count(*) FROM bookings WHERE user_id = $1
`

func (q *Queries) CountBookingsByUser(ctx context.Context, db DBTX, userID uuid.UUID) (int64, error) {
	row := db.QueryRow(ctx, countBookingsByUser, userID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const listBookingsByBusiness = `-- name: ListBookingsByBusiness :many
SELECT ` + bookingViewColumns + `
FROM bookings b
JOIN businesses biz ON biz.id = b.business_id
WHERE b.business_id = $1
  AND ($2::date IS NULL OR b.booking_date = $2::date)
  AND ($3::text IS NULL OR b.status = $3::text)
ORDER BY b.booking_date DESC, b.start_time ASC, b.id ASC
LIMIT $4 OFFSET $5
`

type ListBookingsByBusinessParams struct {
	BusinessID uuid.UUID   `json:"business_id"`
	Date       pgtype.Date `json:"date"`
	Status     pgtype.Text `json:"status"`
	Limit      int32       `json:"limit"`
	Offset     int32       `json:"offset"`
}

func (q *Queries) ListBookingsByBusiness(ctx context.Context, db DBTX, arg ListBookingsByBusinessParams) ([]BookingViewRow, error) {
	return q.listBookingViews(ctx, db, listBookingsByBusiness, arg.BusinessID, arg.Date, arg.Status, arg.Limit, arg.Offset)
}

const countBookingsByBusiness = `-- name: CountBookingsByBusiness :one
SELECT count(*)
FROM bookings
WHERE business_id = $1
  AND ($2::date IS NULL OR booking_date = $2::date)
  AND ($3::text IS NULL OR status = $3::text)
`

type CountBookingsByBusinessParams struct {
	BusinessID uuid.UUID   `json:"business_id"`
	Date       pgtype.Date `json:"date"`
	Status     pgtype.Text `json:"status"`
}

func (q *Queries) CountBookingsByBusiness(ctx context.Context, db DBTX, arg CountBookingsByBusinessParams) (int64, error) {
	row := db.QueryRow(ctx, countBookingsByBusiness, arg.BusinessID, arg.Date, arg.Status)
	var count int64
	err := row.Scan(&count)
	return count, err
}

func (q *Queries) listBookingViews(ctx context.Context, db DBTX, sql string, args ...interface{}) ([]BookingViewRow, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BookingViewRow
	for rows.Next() {
		i, err := scanBookingView(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listBookedStartTimes = `-- name: ListBookedStartTimes :many
SELECT start_time
FROM bookings
WHERE business_id = $1
  AND booking_date = $2
  AND status <> 'cancelled'
ORDER BY start_time
`

type ListBookedStartTimesParams struct {
	BusinessID  uuid.UUID   `json:"business_id"`
	BookingDate pgtype.Date `json:"booking_date"`
}

func (q *Queries) ListBookedStartTimes(ctx context.Context, db DBTX, arg ListBookedStartTimesParams) ([]string, error) {
	rows, err := db.Query(ctx, listBookedStartTimes, arg.BusinessID, arg.BookingDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var startTime string
		if err := rows.Scan(&startTime); err != nil {
			return nil, err
		}
		items = append(items, startTime)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getBookingStatusStats = `-- name: GetBookingStatusStats :many
SELECT status,
       count(*) AS bookings,
       coalesce(sum(total_price_cents) FILTER (WHERE payment_status = 'paid'), 0)::bigint AS paid_revenue
FROM bookings
WHERE business_id = $1
GROUP BY status
ORDER BY status
`

type GetBookingStatusStatsRow struct {
	Status      string `json:"status"`
	Bookings    int64  `json:"bookings"`
	PaidRevenue int64  `json:"paid_revenue"`
}

func (q *Queries) GetBookingStatusStats(ctx context.Context, db DBTX, businessID uuid.UUID) ([]GetBookingStatusStatsRow, error) {
	rows, err := db.Query(ctx, getBookingStatusStats, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetBookingStatusStatsRow
	for rows.Next() {
		var i GetBookingStatusStatsRow
		if err := rows.Scan(&i.Status, &i.Bookings, &i.PaidRevenue); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
