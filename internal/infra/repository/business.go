package repository

import (
	"context"

	"marketplace-api/internal/domain/business"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/query"
	"marketplace-api/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type BusinessWriteQueries interface {
	CreateBusiness(ctx context.Context, db query.DBTX, arg query.CreateBusinessParams) error
	GetBusiness(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Business, error)
	UpdateBusiness(ctx context.Context, db query.DBTX, arg query.UpdateBusinessParams) (int64, error)
}

// BusinessRepository persists the business row. The employee roster and the
// working hours are rewritten whole on every update.
type BusinessRepository struct {
	queries BusinessWriteQueries
	db      query.DBTX
}

func NewBusinessRepository(queries BusinessWriteQueries, db query.DBTX) *BusinessRepository {
	return &BusinessRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BusinessRepository) Create(ctx context.Context, b *business.Business) error {
	params, err := converter.BusinessToCreateParams(b)
	if err != nil {
		return infra.WrapRepoErr("failed to encode business", err, infra.KindDBFailure)
	}
	if err := r.queries.CreateBusiness(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create business", err)
	}
	return nil
}

func (r *BusinessRepository) FindByID(ctx context.Context, id uuid.UUID) (*business.Business, error) {
	row, err := r.queries.GetBusiness(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get business", err)
	}
	b, err := converter.BusinessFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode business", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BusinessRepository) Update(ctx context.Context, b *business.Business) error {
	params, err := converter.BusinessToUpdateParams(b)
	if err != nil {
		return infra.WrapRepoErr("failed to encode business", err, infra.KindDBFailure)
	}
	rows, err := r.queries.UpdateBusiness(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update business", err)
	}
	if rows == 0 {
		return infra.NotFound("business not found")
	}
	return nil
}
