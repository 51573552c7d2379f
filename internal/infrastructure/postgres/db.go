package postgres

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"
)

// DBTX lo cumplen *sql.DB, *sql.Tx y *sql.Conn.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Querier lo cumplen *pgxpool.Pool, *pgxpool.Conn y pgx.Tx.
// Los reportes leen por aquí para usar los codecs registrados en el pool
// (NUMERIC -> decimal.NullDecimal).
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}
