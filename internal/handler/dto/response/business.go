package response

import (
	"time"

	"marketplace-api/internal/domain/business"
	"marketplace-api/internal/domain/schedule"
	"marketplace-api/internal/usecase/queries"
)

type BusinessResponse struct {
	ID           string                `json:"id"`
	OwnerID      string                `json:"ownerId"`
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	Address      string                `json:"address"`
	Phone        string                `json:"phone"`
	WorkingHours schedule.WorkingHours `json:"workingHours"`
	Rating       float64               `json:"rating"`
	NumReviews   int                   `json:"numReviews"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// The employee roster is not part of the public profile; it is served by the
// employees endpoint to callers with a relationship to the business.
func FromBusinessView(v *queries.BusinessView) *BusinessResponse {
	hours := v.WorkingHours
	if hours == nil {
		hours = schedule.WorkingHours{}
	}
	return &BusinessResponse{
		ID:           v.ID.String(),
		OwnerID:      v.OwnerID.String(),
		Name:         v.Name,
		Description:  v.Description,
		Address:      v.Address,
		Phone:        v.Phone,
		WorkingHours: hours,
		Rating:       v.Rating,
		NumReviews:   v.NumReviews,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

type EmployeeResponse struct {
	ID          string               `json:"id"`
	UserID      string               `json:"userId"`
	Role        string               `json:"role"`
	Permissions business.Permissions `json:"permissions"`
	AddedAt     time.Time            `json:"addedAt"`
}

func FromEmployee(e business.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:          e.ID.String(),
		UserID:      e.UserID.String(),
		Role:        e.Role.String(),
		Permissions: e.Permissions,
		AddedAt:     e.AddedAt,
	}
}

func FromEmployees(list []business.Employee) []*EmployeeResponse {
	res := make([]*EmployeeResponse, len(list))
	for i, e := range list {
		res[i] = FromEmployee(e)
	}
	return res
}

type ServiceResponse struct {
	ID              string    `json:"id"`
	BusinessID      string    `json:"businessId"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	PriceCents      int64     `json:"priceCents"`
	DurationMinutes int       `json:"durationMinutes"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	return &ServiceResponse{
		ID:              v.ID.String(),
		BusinessID:      v.BusinessID.String(),
		Name:            v.Name,
		Description:     v.Description,
		PriceCents:      v.PriceCents,
		DurationMinutes: v.DurationMinutes,
		Active:          v.Active,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromServiceViews(list []*queries.ServiceView) []*ServiceResponse {
	res := make([]*ServiceResponse, len(list))
	for i, v := range list {
		res[i] = FromServiceView(v)
	}
	return res
}

type AnalyticsResponse struct {
	BusinessID       string           `json:"businessId"`
	TotalBookings    int64            `json:"totalBookings"`
	BookingsByStatus map[string]int64 `json:"bookingsByStatus"`
	RevenueCents     int64            `json:"revenueCents"`
	Rating           float64          `json:"rating"`
	NumReviews       int              `json:"numReviews"`
}

func FromAnalyticsView(v *queries.AnalyticsView) *AnalyticsResponse {
	return &AnalyticsResponse{
		BusinessID:       v.BusinessID.String(),
		TotalBookings:    v.TotalBookings,
		BookingsByStatus: v.BookingsByStatus,
		RevenueCents:     v.RevenueCents,
		Rating:           v.Rating,
		NumReviews:       v.NumReviews,
	}
}

type IDResponse struct {
	ID string `json:"id"`
}
