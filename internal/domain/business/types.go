package business

// Capability names one business-scoped permission an employee may hold.
type Capability string

const (
	CapManageBookings Capability = "manageBookings"
	CapManageServices Capability = "manageServices"
	CapViewAnalytics  Capability = "viewAnalytics"
	CapEditProfile    Capability = "editProfile"
)

func (c Capability) String() string {
	return string(c)
}

func (c Capability) IsValid() bool {
	switch c {
	case CapManageBookings, CapManageServices, CapViewAnalytics, CapEditProfile:
		return true
	default:
		return false
	}
}

type EmployeeRole string

const (
	EmployeeRoleManager EmployeeRole = "manager"
	EmployeeRoleStaff   EmployeeRole = "staff"
)

func (r EmployeeRole) String() string {
	return string(r)
}

func (r EmployeeRole) IsValid() bool {
	return r == EmployeeRoleManager || r == EmployeeRoleStaff
}

type Permissions struct {
	ManageBookings bool `json:"manageBookings"`
	ManageServices bool `json:"manageServices"`
	ViewAnalytics  bool `json:"viewAnalytics"`
	EditProfile    bool `json:"editProfile"`
}

func (p Permissions) Has(c Capability) bool {
	switch c {
	case CapManageBookings:
		return p.ManageBookings
	case CapManageServices:
		return p.ManageServices
	case CapViewAnalytics:
		return p.ViewAnalytics
	case CapEditProfile:
		return p.EditProfile
	default:
		return false
	}
}
