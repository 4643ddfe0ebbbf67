package commands

import (
	"context"

	"marketplace-api/internal/domain/business"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// EmployeeCommands edits the roster stored on the business row. Like profile
// updates these are last-write-wins.
type EmployeeCommands interface {
	Add(ctx context.Context, businessID uuid.UUID, in business.NewEmployee) (business.Employee, error)
	Update(ctx context.Context, businessID, employeeID uuid.UUID, u business.EmployeeUpdate) (business.Employee, error)
	Remove(ctx context.Context, businessID, employeeID uuid.UUID) error
}

type employeeUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewEmployeeUseCase(uow shared.UnitOfWork, clk clock.Clock) EmployeeCommands {
	return &employeeUseCaseImpl{uow: uow, clock: clk}
}

func (uc *employeeUseCaseImpl) Add(ctx context.Context, businessID uuid.UUID, in business.NewEmployee) (business.Employee, error) {
	var added business.Employee
	err := uc.mutate(ctx, businessID, func(b *business.Business) error {
		e, err := b.AddEmployee(in, uc.clock.Now())
		added = e
		return err
	})
	return added, err
}

func (uc *employeeUseCaseImpl) Update(ctx context.Context, businessID, employeeID uuid.UUID, u business.EmployeeUpdate) (business.Employee, error) {
	var updated business.Employee
	err := uc.mutate(ctx, businessID, func(b *business.Business) error {
		e, err := b.UpdateEmployee(employeeID, u, uc.clock.Now())
		updated = e
		return err
	})
	return updated, err
}

func (uc *employeeUseCaseImpl) Remove(ctx context.Context, businessID, employeeID uuid.UUID) error {
	return uc.mutate(ctx, businessID, func(b *business.Business) error {
		return b.RemoveEmployee(employeeID, uc.clock.Now())
	})
}

func (uc *employeeUseCaseImpl) mutate(ctx context.Context, businessID uuid.UUID, fn func(*business.Business) error) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BusinessByID(ctx, businessID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrBusinessNotFound)
		}
		if err := fn(b); err != nil {
			return err
		}
		return tx.Businesses().Update(ctx, b)
	})
}
