package readstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// DB is the subset of pgxpool.Pool the read stores use.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
