package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Business struct {
	ID           uuid.UUID          `json:"id"`
	OwnerID      uuid.UUID          `json:"owner_id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Address      string             `json:"address"`
	Phone        string             `json:"phone"`
	WorkingHours []byte             `json:"working_hours"`
	Employees    []byte             `json:"employees"`
	Rating       float64            `json:"rating"`
	NumReviews   int32              `json:"num_reviews"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

type Service struct {
	ID              uuid.UUID          `json:"id"`
	BusinessID      uuid.UUID          `json:"business_id"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	PriceCents      int64              `json:"price_cents"`
	DurationMinutes int32              `json:"duration_minutes"`
	Active          bool               `json:"active"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}

type Booking struct {
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
