package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type BookingEventType string

const (
	BookingCreated       BookingEventType = "booking.created"
	BookingStatusChanged BookingEventType = "booking.status_changed"
	BookingReviewed      BookingEventType = "booking.reviewed"
	BookingDeleted       BookingEventType = "booking.deleted"
)

type BookingEvent struct {
	Type       BookingEventType `json:"type"`
	BookingID  uuid.UUID        `json:"bookingId"`
	BusinessID uuid.UUID        `json:"businessId"`
	UserID     uuid.UUID        `json:"userId"`
	Status     string           `json:"status,omitempty"`
	Rating     *int             `json:"rating,omitempty"`
	OccurredAt time.Time        `json:"occurredAt"`
}

// EventPublisher is called after commit. Failures are the caller's to log;
// they never undo the committed change.
type EventPublisher interface {
	Publish(ctx context.Context, ev BookingEvent) error
}
