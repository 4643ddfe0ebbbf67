package commands

import (
	"context"

	"marketplace-api/internal/domain/business"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBusinessRoleRequired = errs.Unauthorized("only business accounts can register a business")

// BusinessCommands expects business-scoped calls to have passed the access
// check already; it only enforces the invariants of the aggregate.
type BusinessCommands interface {
	Create(ctx context.Context, caller user.Caller, p business.Profile) (uuid.UUID, error)
	UpdateProfile(ctx context.Context, businessID uuid.UUID, u business.ProfileUpdate) error
}

type businessUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBusinessUseCase(uow shared.UnitOfWork, clk clock.Clock) BusinessCommands {
	return &businessUseCaseImpl{uow: uow, clock: clk}
}

func (uc *businessUseCaseImpl) Create(ctx context.Context, caller user.Caller, p business.Profile) (uuid.UUID, error) {
	if caller.Role != user.RoleBusiness && !caller.IsAdmin() {
		return uuid.Nil, ErrBusinessRoleRequired
	}
	b, err := business.NewBusiness(caller.ID, p, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Businesses().Create(ctx, b)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return b.ID(), nil
}

// UpdateProfile is a read-modify-write of the business row without a version
// check; concurrent edits are last-write-wins.
func (uc *businessUseCaseImpl) UpdateProfile(ctx context.Context, businessID uuid.UUID, u business.ProfileUpdate) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BusinessByID(ctx, businessID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrBusinessNotFound)
		}
		if err := b.UpdateProfile(u, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Businesses().Update(ctx, b)
	})
}
