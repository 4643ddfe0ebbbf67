package response

import (
	"time"

	"marketplace-api/internal/usecase/queries"
)

type BookingResponse struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"userId"`
	Business           BookingBusiness `json:"business"`
	Service            BookingService  `json:"service"`
	Date               string          `json:"date"`
	StartTime          string          `json:"startTime"`
	EndTime            string          `json:"endTime"`
	Status             string          `json:"status"`
	PaymentStatus      string          `json:"paymentStatus"`
	TotalPriceCents    int64           `json:"totalPriceCents"`
	Rating             *int            `json:"rating,omitempty"`
	Review             *string         `json:"review,omitempty"`
	CancellationReason *string         `json:"cancellationReason,omitempty"`
	Notes              *string         `json:"notes,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

type BookingBusiness struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BookingService is the snapshot taken at booking time. ID is empty once the
// service has been deleted.
type BookingService struct {
	ID              string `json:"id,omitempty"`
	Name            string `json:"name"`
	PriceCents      int64  `json:"priceCents"`
	DurationMinutes int    `json:"durationMinutes"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	svc := BookingService{
		Name:            v.ServiceName,
		PriceCents:      v.ServicePriceCents,
		DurationMinutes: v.ServiceDurationMinutes,
	}
	if v.ServiceID != nil {
		svc.ID = v.ServiceID.String()
	}
	return &BookingResponse{
		ID:                 v.ID.String(),
		UserID:             v.UserID.String(),
		Business:           BookingBusiness{ID: v.BusinessID.String(), Name: v.BusinessName},
		Service:            svc,
		Date:               v.Date,
		StartTime:          v.StartTime,
		EndTime:            v.EndTime,
		Status:             v.Status,
		PaymentStatus:      v.PaymentStatus,
		TotalPriceCents:    v.TotalPriceCents,
		Rating:             v.Rating,
		Review:             v.Review,
		CancellationReason: v.CancellationReason,
		Notes:              v.Notes,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

type BookingPageResponse struct {
	Items      []*BookingResponse `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"totalPages"`
}

func FromBookingPage(p queries.Page[*queries.BookingView]) *BookingPageResponse {
	items := make([]*BookingResponse, len(p.Items))
	for i, v := range p.Items {
		items[i] = FromBookingView(v)
	}
	return &BookingPageResponse{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
	}
}

type SlotsResponse struct {
	BusinessID string   `json:"businessId"`
	Date       string   `json:"date"`
	Slots      []string `json:"slots"`
}

// FromAvailableSlots drains the lazy sequence into "HH:MM" strings.
func FromAvailableSlots(s *queries.AvailableSlots) *SlotsResponse {
	slots := []string{}
	for t := range s.Slots {
		slots = append(slots, t.Format("15:04"))
	}
	return &SlotsResponse{
		BusinessID: s.BusinessID.String(),
		Date:       s.Date.String(),
		Slots:      slots,
	}
}
