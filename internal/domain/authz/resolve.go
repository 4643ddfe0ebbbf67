package authz

import (
	"marketplace-api/internal/domain/business"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type Outcome string

const (
	OutcomeAdmin    Outcome = "admin"
	OutcomeOwner    Outcome = "owner"
	OutcomeEmployee Outcome = "employee"
)

var ErrNoRelationship = errs.Mark(errs.New("not authorized to access this business"), errs.ErrUnauthorized)

// Decision is the resolved access of one caller to one business. It is only
// ever produced for an allowed caller; denials are errors.
type Decision struct {
	Outcome    Outcome
	BusinessID uuid.UUID
	Employee   *business.Employee
}

func (d Decision) ActingAsEmployee() bool { return d.Outcome == OutcomeEmployee }

// Resolve decides whether caller may act on b. Admins and the owner pass
// regardless of capability. Anyone else must be on the employee roster and,
// when required is non-nil, hold that permission.
func Resolve(caller user.Caller, b *business.Business, required *business.Capability) (Decision, error) {
	if caller.IsAdmin() {
		return Decision{Outcome: OutcomeAdmin, BusinessID: b.ID()}, nil
	}
	if b.IsOwner(caller.ID) {
		return Decision{Outcome: OutcomeOwner, BusinessID: b.ID()}, nil
	}

	emp, ok := b.EmployeeByUser(caller.ID)
	if !ok {
		return Decision{}, ErrNoRelationship
	}
	if required != nil && !emp.Permissions.Has(*required) {
		return Decision{}, errs.Mark(
			errs.Newf("employee lacks the %s permission", *required),
			errs.ErrUnauthorized,
		)
	}
	return Decision{Outcome: OutcomeEmployee, BusinessID: b.ID(), Employee: &emp}, nil
}

// ResolveOwner admits only the owner or an admin. Employees are refused even
// when they hold every permission.
func ResolveOwner(caller user.Caller, b *business.Business) (Decision, error) {
	d, err := Resolve(caller, b, nil)
	if err != nil {
		return Decision{}, err
	}
	if d.ActingAsEmployee() {
		return Decision{}, errs.Mark(errs.New("only the business owner can do this"), errs.ErrUnauthorized)
	}
	return d, nil
}
