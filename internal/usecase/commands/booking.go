package commands

import (
	"context"
	"log/slog"

	"marketplace-api/internal/domain/booking"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrServiceInactive = errs.Validation("service is not currently offered")
	ErrAdminOnly       = errs.Unauthorized("only administrators can delete bookings")
)

type CreateBookingInput struct {
	BusinessID uuid.UUID
	ServiceID  uuid.UUID
	Date       string
	StartTime  string
	EndTime    *string
	Notes      *string
}

type UpdateStatusInput struct {
	Status             string
	CancellationReason *string
}

type AddReviewInput struct {
	Rating int
	Review string
}

type BookingCommands interface {
	Create(ctx context.Context, caller user.Caller, in CreateBookingInput) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, caller user.Caller, bookingID uuid.UUID, in UpdateStatusInput) error
	AddReview(ctx context.Context, caller user.Caller, bookingID uuid.UUID, in AddReviewInput) error
	Delete(ctx context.Context, caller user.Caller, bookingID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	publisher shared.EventPublisher
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, publisher shared.EventPublisher) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk, publisher: publisher}
}

// Create books the caller in without checking the slot against existing
// bookings; concurrent requests for one slot both succeed.
func (uc *bookingUseCaseImpl) Create(ctx context.Context, caller user.Caller, in CreateBookingInput) (uuid.UUID, error) {
	var created *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		biz, err := tx.Reads().BusinessByID(ctx, in.BusinessID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrBusinessNotFound)
		}
		svc, err := tx.Reads().ServiceByID(ctx, in.ServiceID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrServiceNotFound)
		}
		if svc.BusinessID() != biz.ID() {
			return shared.ErrServiceNotFound
		}
		if !svc.Active() {
			return ErrServiceInactive
		}

		b, err := booking.NewBooking(booking.NewParams{
			UserID:     caller.ID,
			BusinessID: biz.ID(),
			Service: booking.ServiceSnapshot{
				ID:              svc.ID(),
				Name:            svc.Name(),
				PriceCents:      svc.PriceCents(),
				DurationMinutes: svc.DurationMinutes(),
			},
			Date:      in.Date,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
			Notes:     in.Notes,
		}, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.publish(ctx, shared.BookingCreated, created)
	return created.ID(), nil
}

func (uc *bookingUseCaseImpl) UpdateStatus(ctx context.Context, caller user.Caller, bookingID uuid.UUID, in UpdateStatusInput) error {
	status, err := booking.ParseStatus(in.Status)
	if err != nil {
		return err
	}

	var (
		updated *booking.Booking
		changed bool
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.loadAccessible(ctx, tx.Reads(), caller, bookingID)
		if err != nil {
			return err
		}
		changed, err = b.ChangeStatus(status, in.CancellationReason, uc.clock.Now())
		if err != nil {
			return err
		}
		updated = b
		if !changed {
			return nil
		}
		return tx.Bookings().Update(ctx, b)
	})
	if err != nil {
		return err
	}

	if changed {
		uc.publish(ctx, shared.BookingStatusChanged, updated)
	}
	return nil
}

// AddReview stores the review and refreshes the business rating in one
// transaction; either both land or neither does.
func (uc *bookingUseCaseImpl) AddReview(ctx context.Context, caller user.Caller, bookingID uuid.UUID, in AddReviewInput) error {
	var reviewed *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrBookingNotFound)
		}
		if err := b.AddReview(caller.ID, in.Rating, in.Review, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		if _, err := tx.Ratings().Recompute(ctx, b.BusinessID()); err != nil {
			return errs.Wrap(err, "recompute business rating")
		}
		reviewed = b
		return nil
	})
	if err != nil {
		if !isClientError(err) {
			slog.Error("review submission rolled back",
				slog.String("booking_id", bookingID.String()),
				slog.String("error", err.Error()))
		}
		return err
	}

	uc.publish(ctx, shared.BookingReviewed, reviewed)
	return nil
}

// Delete is the administrative override; the business rating is recomputed
// in case the booking carried one.
func (uc *bookingUseCaseImpl) Delete(ctx context.Context, caller user.Caller, bookingID uuid.UUID) error {
	if !caller.IsAdmin() {
		return ErrAdminOnly
	}

	var deleted *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrBookingNotFound)
		}
		if err := tx.Bookings().Delete(ctx, b.ID()); err != nil {
			return shared.NotFoundAs(err, shared.ErrBookingNotFound)
		}
		if b.HasRating() {
			if _, err := tx.Ratings().Recompute(ctx, b.BusinessID()); err != nil {
				return errs.Wrap(err, "recompute business rating")
			}
		}
		deleted = b
		return nil
	})
	if err != nil {
		return err
	}

	uc.publish(ctx, shared.BookingDeleted, deleted)
	return nil
}

func (uc *bookingUseCaseImpl) loadAccessible(ctx context.Context, reads shared.CommandReads, caller user.Caller, id uuid.UUID) (*booking.Booking, error) {
	b, err := reads.BookingByID(ctx, id)
	if err != nil {
		return nil, shared.NotFoundAs(err, shared.ErrBookingNotFound)
	}
	biz, err := reads.BusinessByID(ctx, b.BusinessID())
	if err != nil {
		return nil, shared.NotFoundAs(err, shared.ErrBusinessNotFound)
	}
	if !b.CanAccess(caller, biz.OwnerID()) {
		return nil, booking.ErrAccessDenied
	}
	return b, nil
}

func (uc *bookingUseCaseImpl) publish(ctx context.Context, typ shared.BookingEventType, b *booking.Booking) {
	ev := shared.BookingEvent{
		Type:       typ,
		BookingID:  b.ID(),
		BusinessID: b.BusinessID(),
		UserID:     b.UserID(),
		Status:     b.Status().String(),
		Rating:     b.RatingValue(),
		OccurredAt: uc.clock.Now(),
	}
	if err := uc.publisher.Publish(ctx, ev); err != nil {
		slog.Warn("booking event not published",
			slog.String("type", string(typ)),
			slog.String("booking_id", b.ID().String()),
			slog.String("error", err.Error()))
	}
}

func isClientError(err error) bool {
	return errs.Is(err, errs.ErrValidation) ||
		errs.Is(err, errs.ErrUnauthorized) ||
		errs.Is(err, errs.ErrNotFound) ||
		errs.Is(err, errs.ErrConflict)
}
