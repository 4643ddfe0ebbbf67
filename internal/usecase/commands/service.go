package commands

import (
	"context"

	"marketplace-api/internal/domain/business"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceCommands interface {
	Create(ctx context.Context, businessID uuid.UUID, in business.ServiceInput) (uuid.UUID, error)
	Update(ctx context.Context, businessID, serviceID uuid.UUID, u business.ServiceUpdate) error
	Delete(ctx context.Context, businessID, serviceID uuid.UUID) error
}

type serviceUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewServiceUseCase(uow shared.UnitOfWork, clk clock.Clock) ServiceCommands {
	return &serviceUseCaseImpl{uow: uow, clock: clk}
}

func (uc *serviceUseCaseImpl) Create(ctx context.Context, businessID uuid.UUID, in business.ServiceInput) (uuid.UUID, error) {
	s, err := business.NewService(businessID, in, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().BusinessByID(ctx, businessID); err != nil {
			return shared.NotFoundAs(err, shared.ErrBusinessNotFound)
		}
		return tx.Services().Create(ctx, s)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return s.ID(), nil
}

// Update leaves existing bookings alone; they carry their own snapshot.
func (uc *serviceUseCaseImpl) Update(ctx context.Context, businessID, serviceID uuid.UUID, u business.ServiceUpdate) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := ownedService(ctx, tx.Reads(), businessID, serviceID)
		if err != nil {
			return err
		}
		if err := s.Update(u, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Services().Update(ctx, s)
	})
}

func (uc *serviceUseCaseImpl) Delete(ctx context.Context, businessID, serviceID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := ownedService(ctx, tx.Reads(), businessID, serviceID); err != nil {
			return err
		}
		return shared.NotFoundAs(tx.Services().Delete(ctx, serviceID), shared.ErrServiceNotFound)
	})
}

// ownedService hides services of other businesses behind NotFound.
func ownedService(ctx context.Context, reads shared.CommandReads, businessID, serviceID uuid.UUID) (*business.Service, error) {
	s, err := reads.ServiceByID(ctx, serviceID)
	if err != nil {
		return nil, shared.NotFoundAs(err, shared.ErrServiceNotFound)
	}
	if s.BusinessID() != businessID {
		return nil, shared.ErrServiceNotFound
	}
	return s, nil
}
