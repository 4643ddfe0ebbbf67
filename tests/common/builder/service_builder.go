//go:build unit || e2e

package builder

import (
	"time"

	"marketplace-api/internal/domain/business"
	reqdto "marketplace-api/internal/handler/dto/request"
	"marketplace-api/internal/infra/query"
	"marketplace-api/internal/pkg/pgconv"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	ID              uuid.UUID
	BusinessID      uuid.UUID
	Name            string
	Description     string
	PriceCents      int64
	DurationMinutes int
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewServiceBuilder() *ServiceBuilder {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	return &ServiceBuilder{
		ID:              uuid.New(),
		BusinessID:      uuid.New(),
		Name:            "Haircut",
		Description:     "Wash and cut",
		PriceCents:      2500,
		DurationMinutes: 30,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ServiceBuilder) BuildDomain() *business.Service {
	return business.ReconstructService(
		b.ID, b.BusinessID,
		b.Name, b.Description,
		b.PriceCents, b.DurationMinutes,
		b.Active,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *ServiceBuilder) BuildInfra() query.Service {
	return query.Service{
		ID:              b.ID,
		BusinessID:      b.BusinessID,
		Name:            b.Name,
		Description:     b.Description,
		PriceCents:      b.PriceCents,
		DurationMinutes: int32(b.DurationMinutes),
		Active:          b.Active,
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *ServiceBuilder) Input() business.ServiceInput {
	return business.ServiceInput{
		Name:            b.Name,
		Description:     b.Description,
		PriceCents:      b.PriceCents,
		DurationMinutes: b.DurationMinutes,
	}
}

func (b *ServiceBuilder) BuildView() *queries.ServiceView {
	return &queries.ServiceView{
		ID:              b.ID,
		BusinessID:      b.BusinessID,
		Name:            b.Name,
		Description:     b.Description,
		PriceCents:      b.PriceCents,
		DurationMinutes: b.DurationMinutes,
		Active:          b.Active,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *ServiceBuilder) BuildCreateRequestDTO() reqdto.CreateServiceRequest {
	return reqdto.CreateServiceRequest{
		Name:            b.Name,
		Description:     b.Description,
		PriceCents:      b.PriceCents,
		DurationMinutes: b.DurationMinutes,
	}
}

// Fluent builder methods
func (b *ServiceBuilder) WithBusinessID(id uuid.UUID) *ServiceBuilder {
	b.BusinessID = id
	return b
}

func (b *ServiceBuilder) Inactive() *ServiceBuilder {
	b.Active = false
	return b
}
