package impl

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/sidereusnuntius/blogs/internal/db"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type dbImpl struct {
	db  *sql.DB
	DMP *diffmatchpatch.DiffMatchPatch
	now func() time.Time
}

func New(d *sql.DB) db.DB {
	return &dbImpl{
		db:  d,
		DMP: diffmatchpatch.New(),
		now: time.Now,
	}
}

// HandleError takes a database error and returns a higher level error that hides the implementation details
// and can be more easily handled by the calling functions without doing type assertions, checking error codes and
// comparing to sentinel errors.
func (d *dbImpl) HandleError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return db.ErrNotFound
	}
	if errors.Is(err, db.ErrNotFound) || errors.Is(err, db.ErrConflict) || errors.Is(err, db.ErrInternal) {
		return err
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return db.ErrConflict
	}

	log.Error().Err(err).Msg("database error")
	return fmt.Errorf("%w: %s", db.ErrInternal, err)
}

// WithTx runs f inside a transaction, committing if f succeeds and rolling back otherwise. The connection
// pool of an in-memory database has a single connection, so f must not touch d.db.
func (d *dbImpl) WithTx(ctx context.Context, f func(tx *sql.Tx) error) (err error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return d.HandleError(err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		} else if err != nil {
			_ = tx.Rollback()
			err = d.HandleError(err)
		} else {
			err = d.HandleError(tx.Commit())
		}
	}()

	err = f(tx)
	return
}

func (d *dbImpl) getDiff(prev, new string) string {
	diffs := d.DMP.DiffMain(prev, new, false)
	patches := d.DMP.PatchMake(prev, diffs)
	return d.DMP.PatchToText(patches)
}

func fromNanos(n int64) time.Time {
	return time.Unix(0, n)
}

func collectKeys(ctx context.Context, q querier, query string, args ...any) ([]string, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
