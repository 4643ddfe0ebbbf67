package readstore

import (
	"context"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/query"
	"marketplace-api/internal/pkg/pgconv"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceViewQueries interface {
	GetService(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Service, error)
	ListServicesByBusiness(ctx context.Context, db query.DBTX, businessID uuid.UUID) ([]query.Service, error)
}

type ServiceReadStore struct {
	queries ServiceViewQueries
	db      query.DBTX
}

func NewServiceReadStore(queries ServiceViewQueries, db query.DBTX) *ServiceReadStore {
	return &ServiceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	row, err := r.queries.GetService(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get service", err)
	}
	return toServiceView(row), nil
}

// ListByBusiness includes inactive services; callers see the active flag.
func (r *ServiceReadStore) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*queries.ServiceView, error) {
	rows, err := r.queries.ListServicesByBusiness(ctx, r.db, businessID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	views := make([]*queries.ServiceView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toServiceView(row))
	}
	return views, nil
}

func toServiceView(row query.Service) *queries.ServiceView {
	return &queries.ServiceView{
		ID:              row.ID,
		BusinessID:      row.BusinessID,
		Name:            row.Name,
		Description:     row.Description,
		PriceCents:      row.PriceCents,
		DurationMinutes: int(row.DurationMinutes),
		Active:          row.Active,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
