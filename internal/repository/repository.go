// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch and persist
// users, properties and reservations, abstracting SQL away from
// the service layer. Every failed statement is returned as an
// *errs.QueryError.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier runs a statement and returns its rows.
//
// *pgxpool.Pool satisfies it, as does pgxmock's pool in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}
