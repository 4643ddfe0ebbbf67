package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createService = `-- name: CreateService :exec
INSERT INTO services (
    id, business_id, name, description, price_cents, duration_minutes, active, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

type CreateServiceParams struct {
	ID              uuid.UUID          `json:"id"`
	BusinessID      uuid.UUID          `json:"business_id"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	PriceCents      int64              `json:"price_cents"`
	DurationMinutes int32              `json:"duration_minutes"`
	Active          bool               `json:"active"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateService(ctx context.Context, db DBTX, arg CreateServiceParams) error {
	_, err := db.Exec(ctx, createService,
		arg.ID,
		arg.BusinessID,
		arg.Name,
		arg.Description,
		arg.PriceCents,
		arg.DurationMinutes,
		arg.Active,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getService = `-- name: GetService :one
SELECT id, business_id, name, description, price_cents, duration_minutes, active, created_at, updated_at
FROM services
WHERE id = $1
`

func (q *Queries) GetService(ctx context.Context, db DBTX, id uuid.UUID) (Service, error) {
	row := db.QueryRow(ctx, getService, id)
	var i Service
	err := row.Scan(
		&i.ID,
		&i.BusinessID,
		&i.Name,
		&i.Description,
		&i.PriceCents,
		&i.DurationMinutes,
		&i.Active,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listServicesByBusiness = `-- name: ListServicesByBusiness :many
SELECT id, business_id, name, description, price_cents, duration_minutes, active, created_at, updated_at
FROM services
WHERE business_id = $1
ORDER BY name ASC, id ASC
`

func (q *Queries) ListServicesByBusiness(ctx context.Context, db DBTX, businessID uuid.UUID) ([]Service, error) {
	rows, err := db.Query(ctx, listServicesByBusiness, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Service
	for rows.Next() {
		var i Service
		if err := rows.Scan(
			&i.ID,
			&i.BusinessID,
			&i.Name,
			&i.Description,
			&i.PriceCents,
			&i.DurationMinutes,
			&i.Active,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateService = `-- name: UpdateService :execrows
UPDATE services
SET name = $2,
    description = $3,
    price_cents = $4,
    duration_minutes = $5,
    active = $6,
    updated_at = $7
WHERE id = $1
`

type UpdateServiceParams struct {
	ID              uuid.UUID          `json:"id"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	PriceCents      int64              `json:"price_cents"`
	DurationMinutes int32              `json:"duration_minutes"`
	Active          bool               `json:"active"`
	UpdatedAt       pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateService(ctx context.Context, db DBTX, arg UpdateServiceParams) (int64, error) {
	result, err := db.Exec(ctx, updateService,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.PriceCents,
		arg.DurationMinutes,
		arg.Active,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteService = `-- name: DeleteService :execrows
DELETE FROM services WHERE id = $1
`

func (q *Queries) DeleteService(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteService, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
