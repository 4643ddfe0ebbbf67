package queries

import (
	"time"

	"marketplace-api/internal/domain/business"
	"marketplace-api/internal/domain/schedule"

	"github.com/google/uuid"
)

// BookingView is the read model of one booking joined with its business.
type BookingView struct {
	ID                     uuid.UUID
	UserID                 uuid.UUID
	BusinessID             uuid.UUID
	BusinessName           string
	BusinessOwnerID        uuid.UUID
	ServiceID              *uuid.UUID
	ServiceName            string
	ServicePriceCents      int64
	ServiceDurationMinutes int
	Date                   string
	StartTime              string
	EndTime                string
	Status                 string
	PaymentStatus          string
	TotalPriceCents        int64
	Rating                 *int
	Review                 *string
	CancellationReason     *string
	Notes                  *string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

type BusinessView struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	Description  string
	Address      string
	Phone        string
	WorkingHours schedule.WorkingHours
	Employees    []business.Employee
	Rating       float64
	NumReviews   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ServiceView struct {
	ID              uuid.UUID
	BusinessID      uuid.UUID
	Name            string
	Description     string
	PriceCents      int64
	DurationMinutes int
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// StatusStat is one row of the per-status booking breakdown.
type StatusStat struct {
	Status      string
	Count       int64
	PaidRevenue int64
}

type AnalyticsView struct {
	BusinessID       uuid.UUID
	TotalBookings    int64
	BookingsByStatus map[string]int64
	RevenueCents     int64
	Rating           float64
	NumReviews       int
}

// BookingFilter narrows a business's booking list. Nil fields match all.
type BookingFilter struct {
	Date   *schedule.Date
	Status *string
}
