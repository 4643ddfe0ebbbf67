package request

import (
	"marketplace-api/internal/domain/business"
	"marketplace-api/internal/domain/schedule"
	"marketplace-api/internal/pkg/patch"
)

type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	IsOpen *bool  `json:"isOpen"`
}

// WorkingHours is checked as a whole by the workinghours rule: weekday keys
// and HH:MM bounds of every open day.
type WorkingHours map[string]*DayHours

func (w WorkingHours) ToDomain() schedule.WorkingHours {
	if w == nil {
		return nil
	}
	out := make(schedule.WorkingHours, len(w))
	for day, h := range w {
		if h == nil {
			out[day] = nil
			continue
		}
		out[day] = &schedule.DayHours{Open: h.Open, Close: h.Close, IsOpen: h.IsOpen}
	}
	return out
}

type CreateBusinessRequest struct {
	Name         string       `json:"name" binding:"required,max=200"`
	Description  string       `json:"description" binding:"max=2000"`
	Address      string       `json:"address" binding:"max=500"`
	Phone        string       `json:"phone" binding:"max=50"`
	WorkingHours WorkingHours `json:"workingHours" binding:"omitempty,workinghours"`
}

func (r *CreateBusinessRequest) ToDomain() business.Profile {
	return business.Profile{
		Name:         r.Name,
		Description:  r.Description,
		Address:      r.Address,
		Phone:        r.Phone,
		WorkingHours: r.WorkingHours.ToDomain(),
	}
}

// UpdateBusinessRequest distinguishes an absent key from an explicit null or
// empty value. Only keys present in the body are applied.
type UpdateBusinessRequest struct {
	Name         patch.Field[string]       `json:"name"`
	Description  patch.Field[string]       `json:"description"`
	Address      patch.Field[string]       `json:"address"`
	Phone        patch.Field[string]       `json:"phone"`
	WorkingHours patch.Field[WorkingHours] `json:"workingHours"`
}

func (r *UpdateBusinessRequest) ToDomain() business.ProfileUpdate {
	hours := patch.Field[schedule.WorkingHours]{Set: r.WorkingHours.Set, Null: r.WorkingHours.Null}
	if r.WorkingHours.Set && !r.WorkingHours.Null {
		hours.Value = r.WorkingHours.Value.ToDomain()
	}
	return business.ProfileUpdate{
		Name:         r.Name,
		Description:  r.Description,
		Address:      r.Address,
		Phone:        r.Phone,
		WorkingHours: hours,
	}
}
