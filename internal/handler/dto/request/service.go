package request

import (
	"marketplace-api/internal/domain/business"
	"marketplace-api/internal/pkg/patch"
)

type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required,max=200"`
	Description     string `json:"description" binding:"max=2000"`
	PriceCents      int64  `json:"priceCents" binding:"gte=0"`
	DurationMinutes int    `json:"durationMinutes" binding:"required,gt=0"`
}

func (r *CreateServiceRequest) ToDomain() business.ServiceInput {
	return business.ServiceInput{
		Name:            r.Name,
		Description:     r.Description,
		PriceCents:      r.PriceCents,
		DurationMinutes: r.DurationMinutes,
	}
}

type UpdateServiceRequest struct {
	Name            patch.Field[string] `json:"name"`
	Description     patch.Field[string] `json:"description"`
	PriceCents      patch.Field[int64]  `json:"priceCents"`
	DurationMinutes patch.Field[int]    `json:"durationMinutes"`
	Active          patch.Field[bool]   `json:"active"`
}

func (r *UpdateServiceRequest) ToDomain() business.ServiceUpdate {
	return business.ServiceUpdate{
		Name:            r.Name,
		Description:     r.Description,
		PriceCents:      r.PriceCents,
		DurationMinutes: r.DurationMinutes,
		Active:          r.Active,
	}
}
