package repository

import (
	"context"

	"marketplace-api/internal/domain/business"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/query"
	"marketplace-api/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type ServiceWriteQueries interface {
	CreateService(ctx context.Context, db query.DBTX, arg query.CreateServiceParams) error
	GetService(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Service, error)
	UpdateService(ctx context.Context, db query.DBTX, arg query.UpdateServiceParams) (int64, error)
	DeleteService(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type ServiceRepository struct {
	queries ServiceWriteQueries
	db      query.DBTX
}

func NewServiceRepository(queries ServiceWriteQueries, db query.DBTX) *ServiceRepository {
	return &ServiceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, s *business.Service) error {
	if err := r.queries.CreateService(ctx, r.db, converter.ServiceToCreateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to create service", err)
	}
	return nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*business.Service, error) {
	row, err := r.queries.GetService(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get service", err)
	}
	return converter.ServiceFromRow(row), nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *business.Service) error {
	rows, err := r.queries.UpdateService(ctx, r.db, converter.ServiceToUpdateParams(s))
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if rows == 0 {
		return infra.NotFound("service not found")
	}
	return nil
}

// Delete removes the service. Bookings keep their snapshot and lose only the
// reference.
func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := r.queries.DeleteService(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete service", err)
	}
	if rows == 0 {
		return infra.NotFound("service not found")
	}
	return nil
}
