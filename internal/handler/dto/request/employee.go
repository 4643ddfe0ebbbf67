package request

import (
	"marketplace-api/internal/domain/business"
	"marketplace-api/internal/pkg/patch"

	"github.com/google/uuid"
)

type Permissions struct {
	ManageBookings bool `json:"manageBookings"`
	ManageServices bool `json:"manageServices"`
	ViewAnalytics  bool `json:"viewAnalytics"`
	EditProfile    bool `json:"editProfile"`
}

type AddEmployeeRequest struct {
	UserID      uuid.UUID    `json:"userId" binding:"required"`
	Role        string       `json:"role" binding:"omitempty,oneof=manager staff"`
	Permissions *Permissions `json:"permissions"`
}

func (r *AddEmployeeRequest) ToDomain() business.NewEmployee {
	e := business.NewEmployee{
		UserID: r.UserID,
		Role:   business.EmployeeRole(r.Role),
	}
	if r.Permissions != nil {
		e.Permissions = business.Permissions(*r.Permissions)
	}
	return e
}

type PermissionsPatch struct {
	ManageBookings patch.Field[bool] `json:"manageBookings"`
	ManageServices patch.Field[bool] `json:"manageServices"`
	ViewAnalytics  patch.Field[bool] `json:"viewAnalytics"`
	EditProfile    patch.Field[bool] `json:"editProfile"`
}

type UpdateEmployeeRequest struct {
	Role        patch.Field[business.EmployeeRole] `json:"role"`
	Permissions PermissionsPatch                   `json:"permissions"`
}

func (r *UpdateEmployeeRequest) ToDomain() business.EmployeeUpdate {
	return business.EmployeeUpdate{
		Role:           r.Role,
		ManageBookings: r.Permissions.ManageBookings,
		ManageServices: r.Permissions.ManageServices,
		ViewAnalytics:  r.Permissions.ViewAnalytics,
		EditProfile:    r.Permissions.EditProfile,
	}
}
