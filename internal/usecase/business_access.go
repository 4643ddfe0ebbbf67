package usecase

import (
	"context"

	"marketplace-api/internal/domain/authz"
	"marketplace-api/internal/domain/business"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// BusinessAuthorizer loads a business and resolves the caller's access to it.
type BusinessAuthorizer interface {
	// Authorize admits the owner, an admin, or an employee holding required.
	// A nil required admits any employee.
	Authorize(ctx context.Context, caller user.Caller, businessID uuid.UUID, required *business.Capability) (authz.Decision, error)
	// AuthorizeOwner admits only the owner or an admin.
	AuthorizeOwner(ctx context.Context, caller user.Caller, businessID uuid.UUID) (authz.Decision, error)
}

type businessAuthorizerImpl struct {
	uow shared.UnitOfWork
}

func NewBusinessAuthorizer(uow shared.UnitOfWork) BusinessAuthorizer {
	return &businessAuthorizerImpl{uow: uow}
}

func (a *businessAuthorizerImpl) Authorize(ctx context.Context, caller user.Caller, businessID uuid.UUID, required *business.Capability) (authz.Decision, error) {
	b, err := a.load(ctx, businessID)
	if err != nil {
		return authz.Decision{}, err
	}
	return authz.Resolve(caller, b, required)
}

func (a *businessAuthorizerImpl) AuthorizeOwner(ctx context.Context, caller user.Caller, businessID uuid.UUID) (authz.Decision, error) {
	b, err := a.load(ctx, businessID)
	if err != nil {
		return authz.Decision{}, err
	}
	return authz.ResolveOwner(caller, b)
}

func (a *businessAuthorizerImpl) load(ctx context.Context, businessID uuid.UUID) (*business.Business, error) {
	b, err := a.uow.CommandReads().BusinessByID(ctx, businessID)
	if err != nil {
		return nil, shared.NotFoundAs(err, shared.ErrBusinessNotFound)
	}
	return b, nil
}
