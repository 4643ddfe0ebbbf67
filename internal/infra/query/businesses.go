package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createBusiness = `-- name: CreateBusiness :exec
INSERT INTO businesses (
    id, owner_id, name, description, address, phone,
    working_hours, employees, rating, num_reviews, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`

type CreateBusinessParams struct {
	ID           uuid.UUID          `json:"id"`
	OwnerID      uuid.UUID          `json:"owner_id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Address      string             `json:"address"`
	Phone        string             `json:"phone"`
	WorkingHours []byte             `json:"working_hours"`
	Employees    []byte             `json:"employees"`
	Rating       float64            `json:"rating"`
	NumReviews   int32              `json:"num_reviews"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateBusiness(ctx context.Context, db DBTX, arg CreateBusinessParams) error {
	_, err := db.Exec(ctx, createBusiness,
		arg.ID,
		arg.OwnerID,
		arg.Name,
		arg.Description,
		arg.Address,
		arg.Phone,
		arg.WorkingHours,
		arg.Employees,
		arg.Rating,
		arg.NumReviews,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getBusiness = `-- name: GetBusiness :one
SELECT id, owner_id, name, description, address, phone,
       working_hours, employees, rating, num_reviews, created_at, updated_at
FROM businesses
WHERE id = $1
`

func (q *Queries) GetBusiness(ctx context.Context, db DBTX, id uuid.UUID) (Business, error) {
	row := db.QueryRow(ctx, getBusiness, id)
	var i Business
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Name,
		&i.Description,
		&i.Address,
		&i.Phone,
		&i.WorkingHours,
		&i.Employees,
		&i.Rating,
		&i.NumReviews,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateBusiness = `-- name: UpdateBusiness :execrows
UPDATE businesses
SET name = $2,
    description = $3,
    address = $4,
    phone = $5,
    working_hours = $6,
    employees = $7,
    updated_at = $8
WHERE id = $1
`

type UpdateBusinessParams struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Address      string             `json:"address"`
	Phone        string             `json:"phone"`
	WorkingHours []byte             `json:"working_hours"`
	Employees    []byte             `json:"employees"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateBusiness(ctx context.Context, db DBTX, arg UpdateBusinessParams) (int64, error) {
	result, err := db.Exec(ctx, updateBusiness,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.Address,
		arg.Phone,
		arg.WorkingHours,
		arg.Employees,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateBusinessRating = `-- name: UpdateBusinessRating :execrows
UPDATE businesses
SET rating = $2,
    num_reviews = $3
WHERE id = $1
`

// The aggregate is derived data; refreshing it leaves updated_at alone.
type UpdateBusinessRatingParams struct {
	ID         uuid.UUID `json:"id"`
	Rating     float64   `json:"rating"`
	NumReviews int32     `json:"num_reviews"`
}

func (q *Queries) UpdateBusinessRating(ctx context.Context, db DBTX, arg UpdateBusinessRatingParams) (int64, error) {
	result, err := db.Exec(ctx, updateBusinessRating,
		arg.ID,
		arg.Rating,
		arg.NumReviews,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
