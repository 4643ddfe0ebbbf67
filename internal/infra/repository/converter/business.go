package converter

import (
	"encoding/json"

	"marketplace-api/internal/domain/business"
	"marketplace-api/internal/domain/schedule"
	"marketplace-api/internal/infra/query"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/pkg/pgconv"
)

func BusinessToCreateParams(b *business.Business) (query.CreateBusinessParams, error) {
	hours, employees, err := marshalDocuments(b)
	if err != nil {
		return query.CreateBusinessParams{}, err
	}
	return query.CreateBusinessParams{
		ID:           b.ID(),
		OwnerID:      b.OwnerID(),
		Name:         b.Name(),
		Description:  b.Description(),
		Address:      b.Address(),
		Phone:        b.Phone(),
		WorkingHours: hours,
		Employees:    employees,
		Rating:       b.Rating(),
		NumReviews:   int32(b.NumReviews()), // #nosec G115 -- review counts fit in int32
		CreatedAt:    pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(b.UpdatedAt()),
	}, nil
}

func BusinessToUpdateParams(b *business.Business) (query.UpdateBusinessParams, error) {
	hours, employees, err := marshalDocuments(b)
	if err != nil {
		return query.UpdateBusinessParams{}, err
	}
	return query.UpdateBusinessParams{
		ID:           b.ID(),
		Name:         b.Name(),
		Description:  b.Description(),
		Address:      b.Address(),
		Phone:        b.Phone(),
		WorkingHours: hours,
		Employees:    employees,
		UpdatedAt:    pgconv.TimeToPgtype(b.UpdatedAt()),
	}, nil
}

func BusinessFromRow(row query.Business) (*business.Business, error) {
	hours, err := WorkingHoursFromJSON(row.WorkingHours)
	if err != nil {
		return nil, errs.Wrapf(err, "business %s working_hours", row.ID)
	}
	employees, err := EmployeesFromJSON(row.Employees)
	if err != nil {
		return nil, errs.Wrapf(err, "business %s employees", row.ID)
	}
	return business.Reconstruct(business.ReconstructParams{
		ID:           row.ID,
		OwnerID:      row.OwnerID,
		Name:         row.Name,
		Description:  row.Description,
		Address:      row.Address,
		Phone:        row.Phone,
		WorkingHours: hours,
		Employees:    employees,
		Rating:       row.Rating,
		NumReviews:   int(row.NumReviews),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

// WorkingHoursFromJSON treats an empty or null document as "no hours set".
func WorkingHoursFromJSON(raw []byte) (schedule.WorkingHours, error) {
	hours := schedule.WorkingHours{}
	if len(raw) == 0 || string(raw) == "null" {
		return hours, nil
	}
	if err := json.Unmarshal(raw, &hours); err != nil {
		return nil, err
	}
	return hours, nil
}

func EmployeesFromJSON(raw []byte) ([]business.Employee, error) {
	employees := []business.Employee{}
	if len(raw) == 0 || string(raw) == "null" {
		return employees, nil
	}
	if err := json.Unmarshal(raw, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func marshalDocuments(b *business.Business) (hours, employees []byte, err error) {
	wh := b.WorkingHours()
	if wh == nil {
		wh = schedule.WorkingHours{}
	}
	hours, err = json.Marshal(wh)
	if err != nil {
		return nil, nil, errs.Wrap(err, "marshal working hours")
	}
	list := b.Employees()
	if list == nil {
		list = []business.Employee{}
	}
	employees, err = json.Marshal(list)
	if err != nil {
		return nil, nil, errs.Wrap(err, "marshal employees")
	}
	return hours, employees, nil
}
