package request

import (
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	BusinessID uuid.UUID `json:"businessId" binding:"required"`
	ServiceID  uuid.UUID `json:"serviceId" binding:"required"`
	Date       string    `json:"date" binding:"required,isodate"`
	StartTime  string    `json:"startTime" binding:"required,clock"`
	EndTime    *string   `json:"endTime" binding:"omitempty,clock"`
	Notes      *string   `json:"notes" binding:"omitempty,max=1000"`
}

func (r *CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		BusinessID: r.BusinessID,
		ServiceID:  r.ServiceID,
		Date:       r.Date,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Notes:      r.Notes,
	}
}

// Status membership is checked by the domain so the error names the value.
type UpdateBookingStatusRequest struct {
	Status             string  `json:"status" binding:"required"`
	CancellationReason *string `json:"cancellationReason" binding:"omitempty,max=500"`
}

func (r *UpdateBookingStatusRequest) ToInput() commands.UpdateStatusInput {
	return commands.UpdateStatusInput{
		Status:             r.Status,
		CancellationReason: r.CancellationReason,
	}
}

type AddReviewRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Review string `json:"review" binding:"max=1000"`
}

func (r *AddReviewRequest) ToInput() commands.AddReviewInput {
	return commands.AddReviewInput{Rating: r.Rating, Review: r.Review}
}

// PageQuery uses pointers so an explicit page=0 is rejected instead of
// falling back to the default.
type PageQuery struct {
	Page  *int `form:"page" binding:"omitempty,min=1,max=1000000"`
	Limit *int `form:"limit" binding:"omitempty,min=1"`
}

func (q PageQuery) ToPageRequest() queries.PageRequest {
	var r queries.PageRequest
	if q.Page != nil {
		r.Page = *q.Page
	}
	if q.Limit != nil {
		r.Limit = *q.Limit
	}
	return r
}

type BusinessBookingsQuery struct {
	PageQuery
	Date   string `form:"date" binding:"omitempty,isodate"`
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
}
