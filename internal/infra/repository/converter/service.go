package converter

import (
	"marketplace-api/internal/domain/business"
	"marketplace-api/internal/infra/query"
	"marketplace-api/internal/pkg/pgconv"
)

func ServiceToCreateParams(s *business.Service) query.CreateServiceParams {
	return query.CreateServiceParams{
		ID:              s.ID(),
		BusinessID:      s.BusinessID(),
		Name:            s.Name(),
		Description:     s.Description(),
		PriceCents:      s.PriceCents(),
		DurationMinutes: int32(s.DurationMinutes()), // #nosec G115 -- validated duration
		Active:          s.Active(),
		CreatedAt:       pgconv.TimeToPgtype(s.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func ServiceToUpdateParams(s *business.Service) query.UpdateServiceParams {
	return query.UpdateServiceParams{
		ID:              s.ID(),
		Name:            s.Name(),
		Description:     s.Description(),
		PriceCents:      s.PriceCents(),
		DurationMinutes: int32(s.DurationMinutes()), // #nosec G115 -- validated duration
		Active:          s.Active(),
		UpdatedAt:       pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func ServiceFromRow(row query.Service) *business.Service {
	return business.ReconstructService(
		row.ID, row.BusinessID,
		row.Name, row.Description,
		row.PriceCents,
		int(row.DurationMinutes),
		row.Active,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
