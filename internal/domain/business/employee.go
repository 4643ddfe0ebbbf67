package business

import (
	"time"

	"marketplace-api/internal/pkg/patch"

	"github.com/google/uuid"
)

type Employee struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"userId"`
	Role        EmployeeRole `json:"role"`
	Permissions Permissions  `json:"permissions"`
	AddedAt     time.Time    `json:"addedAt"`
}

type NewEmployee struct {
	UserID      uuid.UUID
	Role        EmployeeRole
	Permissions Permissions
}

// EmployeeUpdate carries only the fields the caller sent.
type EmployeeUpdate struct {
	Role           patch.Field[EmployeeRole]
	ManageBookings patch.Field[bool]
	ManageServices patch.Field[bool]
	ViewAnalytics  patch.Field[bool]
	EditProfile    patch.Field[bool]
}

func (u EmployeeUpdate) apply(e Employee) (Employee, error) {
	if u.Role.Set && !u.Role.Null {
		if !u.Role.Value.IsValid() {
			return Employee{}, ErrInvalidEmployeeRole
		}
		e.Role = u.Role.Value
	}
	e.Permissions.ManageBookings = u.ManageBookings.Apply(e.Permissions.ManageBookings)
	e.Permissions.ManageServices = u.ManageServices.Apply(e.Permissions.ManageServices)
	e.Permissions.ViewAnalytics = u.ViewAnalytics.Apply(e.Permissions.ViewAnalytics)
	e.Permissions.EditProfile = u.EditProfile.Apply(e.Permissions.EditProfile)
	return e, nil
}

// AddEmployee appends a new employee. The owner, an existing employee and a
// fifth employee are all rejected and leave the roster untouched.
func (b *Business) AddEmployee(in NewEmployee, now time.Time) (Employee, error) {
	if in.UserID == uuid.Nil {
		return Employee{}, ErrEmployeeUserMissing
	}
	role := in.Role
	if role == "" {
		role = EmployeeRoleStaff
	}
	if !role.IsValid() {
		return Employee{}, ErrInvalidEmployeeRole
	}
	if in.UserID == b.ownerID {
		return Employee{}, ErrOwnerAsEmployee
	}
	if _, ok := b.EmployeeByUser(in.UserID); ok {
		return Employee{}, ErrDuplicateEmployee
	}
	if len(b.employees) >= MaxEmployees {
		return Employee{}, ErrEmployeeLimit
	}

	e := Employee{
		ID:          uuid.New(),
		UserID:      in.UserID,
		Role:        role,
		Permissions: in.Permissions,
		AddedAt:     now,
	}
	b.employees = append(b.employees, e)
	b.updatedAt = now
	return e, nil
}

func (b *Business) UpdateEmployee(employeeID uuid.UUID, u EmployeeUpdate, now time.Time) (Employee, error) {
	i := b.employeeIndex(employeeID)
	if i < 0 {
		return Employee{}, ErrEmployeeNotFound
	}
	e, err := u.apply(b.employees[i])
	if err != nil {
		return Employee{}, err
	}
	b.employees[i] = e
	b.updatedAt = now
	return e, nil
}

func (b *Business) RemoveEmployee(employeeID uuid.UUID, now time.Time) error {
	i := b.employeeIndex(employeeID)
	if i < 0 {
		return ErrEmployeeNotFound
	}
	b.employees = append(b.employees[:i:i], b.employees[i+1:]...)
	b.updatedAt = now
	return nil
}

func (b *Business) EmployeeByUser(userID uuid.UUID) (Employee, bool) {
	for _, e := range b.employees {
		if e.UserID == userID {
			return e, true
		}
	}
	return Employee{}, false
}

func (b *Business) employeeIndex(id uuid.UUID) int {
	for i, e := range b.employees {
		if e.ID == id {
			return i
		}
	}
	return -1
}
