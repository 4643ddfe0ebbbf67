package readstore

import (
	"context"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/query"
	"marketplace-api/internal/infra/repository/converter"
	"marketplace-api/internal/pkg/pgconv"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BusinessViewQueries interface {
	GetBusiness(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Business, error)
}

type BusinessReadStore struct {
	queries BusinessViewQueries
	db      query.DBTX
}

func NewBusinessReadStore(queries BusinessViewQueries, db query.DBTX) *BusinessReadStore {
	return &BusinessReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BusinessReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BusinessView, error) {
	row, err := r.queries.GetBusiness(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("business not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get business", err)
	}
	hours, err := converter.WorkingHoursFromJSON(row.WorkingHours)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode working hours", err, infra.KindDBFailure)
	}
	employees, err := converter.EmployeesFromJSON(row.Employees)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode employees", err, infra.KindDBFailure)
	}
	return &queries.BusinessView{
		ID:           row.ID,
		OwnerID:      row.OwnerID,
		Name:         row.Name,
		Description:  row.Description,
		Address:      row.Address,
		Phone:        row.Phone,
		WorkingHours: hours,
		Employees:    employees,
		Rating:       row.Rating,
		NumReviews:   int(row.NumReviews),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
