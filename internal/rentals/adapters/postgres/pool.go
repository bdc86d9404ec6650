// Package postgres реализует репозитории сервиса проката поверх PostgreSQL.
package postgres

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPoolInterface - часть pgxpool.Pool, нужная репозиториям.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

const dialectPostgres = "postgres"

const (
	tableUsers   = "users"
	tableMovies  = "movies"
	tableRentals = "rentals"

	colID         = "id"
	colFirstName  = "first_name"
	colLastName   = "last_name"
	colEmail      = "email"
	colCPF        = "cpf"
	colBirthDate  = "birth_date"
	colName       = "name"
	colAdultsOnly = "adults_only"
	colRentalID   = "rental_id"
	colDate       = "date"
	colEndDate    = "end_date"
	colUserID     = "user_id"
	colClosed     = "closed"
)

const errBuildingQuery = "error building query"

var (
	userColumns   = []interface{}{colID, colFirstName, colLastName, colEmail, colCPF, colBirthDate}
	movieColumns  = []interface{}{colID, colName, colAdultsOnly, colRentalID}
	rentalColumns = []interface{}{colID, colDate, colEndDate, colUserID, colClosed}
)

func builder() goqu.DialectWrapper {
	return goqu.Dialect(dialectPostgres)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}
