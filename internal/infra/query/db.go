// Package query holds the SQL of the service. It is maintained by hand in
// the shape sqlc emits with emit_methods_with_db_argument: every method takes
// the DBTX to run on, so the same Queries value serves pool and transaction
// alike.
package query

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

func New() *Queries {
	return &Queries{}
}

type Queries struct{}
