package business

import "marketplace-api/internal/pkg/errs"

const MaxEmployees = 4

var (
	ErrNameRequired        = errs.Mark(errs.New("business name is required"), errs.ErrValidation)
	ErrInvalidEmployeeRole = errs.Mark(errs.New("employee role must be manager or staff"), errs.ErrValidation)
	ErrEmployeeUserMissing = errs.Mark(errs.New("employee user id is required"), errs.ErrValidation)

	ErrOwnerAsEmployee   = errs.Mark(errs.New("business owner cannot be added as an employee"), errs.ErrConflict)
	ErrDuplicateEmployee = errs.Mark(errs.New("user is already an employee of this business"), errs.ErrConflict)
	ErrEmployeeLimit     = errs.Mark(errs.Newf("a business can have at most %d employees", MaxEmployees), errs.ErrConflict)
	ErrEmployeeNotFound  = errs.Mark(errs.New("employee not found"), errs.ErrNotFound)

	ErrServiceNameRequired = errs.Mark(errs.New("service name is required"), errs.ErrValidation)
	ErrInvalidPrice        = errs.Mark(errs.New("service price cannot be negative"), errs.ErrValidation)
	ErrInvalidDuration     = errs.Mark(errs.New("service duration must be a positive number of minutes"), errs.ErrValidation)
)
