//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"marketplace-api/internal/domain/business"
	"marketplace-api/internal/domain/schedule"
	reqdto "marketplace-api/internal/handler/dto/request"
	"marketplace-api/internal/infra/query"
	"marketplace-api/internal/pkg/pgconv"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BusinessBuilder struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	Description  string
	Address      string
	Phone        string
	WorkingHours schedule.WorkingHours
	Employees    []business.Employee
	Rating       float64
	NumReviews   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewBusinessBuilder() *BusinessBuilder {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	return &BusinessBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Name:        "Corner Barber",
		Description: "Cuts and shaves",
		Address:     "1 Main St",
		Phone:       "555-0100",
		WorkingHours: schedule.WorkingHours{
			"monday":    {Open: "09:00", Close: "17:00"},
			"tuesday":   {Open: "09:00", Close: "17:00"},
			"wednesday": {Open: "09:00", Close: "17:00"},
			"thursday":  {Open: "09:00", Close: "17:00"},
			"friday":    {Open: "09:00", Close: "17:00"},
			"saturday":  {Open: "10:00", Close: "14:00"},
			"sunday":    schedule.ClosedDay(),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *BusinessBuilder) With(mutate func(*BusinessBuilder)) *BusinessBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BusinessBuilder) BuildDomain() *business.Business {
	return business.Reconstruct(business.ReconstructParams{
		ID:           b.ID,
		OwnerID:      b.OwnerID,
		Name:         b.Name,
		Description:  b.Description,
		Address:      b.Address,
		Phone:        b.Phone,
		WorkingHours: b.WorkingHours,
		Employees:    append([]business.Employee(nil), b.Employees...),
		Rating:       b.Rating,
		NumReviews:   b.NumReviews,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	})
}

func (b *BusinessBuilder) BuildInfra() query.Business {
	hours, err := json.Marshal(b.WorkingHours)
	if err != nil {
		panic(err)
	}
	employees := b.Employees
	if employees == nil {
		employees = []business.Employee{}
	}
	roster, err := json.Marshal(employees)
	if err != nil {
		panic(err)
	}
	return query.Business{
		ID:           b.ID,
		OwnerID:      b.OwnerID,
		Name:         b.Name,
		Description:  b.Description,
		Address:      b.Address,
		Phone:        b.Phone,
		WorkingHours: hours,
		Employees:    roster,
		Rating:       b.Rating,
		NumReviews:   int32(b.NumReviews),
		CreatedAt:    pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:    pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *BusinessBuilder) Profile() business.Profile {
	return business.Profile{
		Name:         b.Name,
		Description:  b.Description,
		Address:      b.Address,
		Phone:        b.Phone,
		WorkingHours: b.WorkingHours,
	}
}

func (b *BusinessBuilder) BuildView() *queries.BusinessView {
	return &queries.BusinessView{
		ID:           b.ID,
		OwnerID:      b.OwnerID,
		Name:         b.Name,
		Description:  b.Description,
		Address:      b.Address,
		Phone:        b.Phone,
		WorkingHours: b.WorkingHours,
		Employees:    append([]business.Employee{}, b.Employees...),
		Rating:       b.Rating,
		NumReviews:   b.NumReviews,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (b *BusinessBuilder) BuildCreateRequestDTO() reqdto.CreateBusinessRequest {
	hours := make(reqdto.WorkingHours, len(b.WorkingHours))
	for day, h := range b.WorkingHours {
		hours[day] = &reqdto.DayHours{Open: h.Open, Close: h.Close, IsOpen: h.IsOpen}
	}
	return reqdto.CreateBusinessRequest{
		Name:         b.Name,
		Description:  b.Description,
		Address:      b.Address,
		Phone:        b.Phone,
		WorkingHours: hours,
	}
}

// Fluent builder methods
func (b *BusinessBuilder) WithOwnerID(id uuid.UUID) *BusinessBuilder {
	b.OwnerID = id
	return b
}

func (b *BusinessBuilder) WithHours(weekday string, h *schedule.DayHours) *BusinessBuilder {
	b.WorkingHours[weekday] = h
	return b
}

// WithEmployee adds a roster entry for userID with the given permissions.
func (b *BusinessBuilder) WithEmployee(userID uuid.UUID, perms business.Permissions) *BusinessBuilder {
	b.Employees = append(b.Employees, business.Employee{
		ID:          uuid.New(),
		UserID:      userID,
		Role:        business.EmployeeRoleStaff,
		Permissions: perms,
		AddedAt:     b.CreatedAt,
	})
	return b
}

func (b *BusinessBuilder) WithRating(avg float64, n int) *BusinessBuilder {
	b.Rating = avg
	b.NumReviews = n
	return b
}
