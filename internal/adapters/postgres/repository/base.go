package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lmaki/rewarddining/internal/adapters/postgres"
	"github.com/lmaki/rewarddining/internal/core/serviceerrors"
)

// dbConn is the pgx surface shared by *pgxpool.Pool and pgx.Tx, so a
// repository method runs against whichever the context provides.
type dbConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

func conn(ctx context.Context, pool *pgxpool.Pool) dbConn {
	if tx, ok := postgres.TxFromContext(ctx); ok {
		return tx
	}
	return pool
}

const uniqueViolation = "23505"

func parseError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return serviceerrors.NewNotFoundError("entity not found")
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return serviceerrors.NewConflictError("duplicate key error")
	}
	return err
}
