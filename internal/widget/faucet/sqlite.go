package faucet

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitemigration"
	"zombiezen.com/go/sqlite/sqlitex"
)

var schema = sqlitemigration.Schema{
	Migrations: []string{
		`CREATE TABLE IF NOT EXISTS grants (
			address TEXT PRIMARY KEY,
			granted_at INTEGER NOT NULL
		);`,
	},
}

type SQLiteStore struct {
	pool *sqlitemigration.Pool
}

// LastGrant implements GrantStore.
func (s *SQLiteStore) LastGrant(ctx context.Context, address string) (time.Time, error) {
	var grantedAt time.Time

	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		query := "SELECT granted_at FROM grants WHERE address = ? LIMIT 1"
		err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{address},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				grantedAt = time.UnixMilli(stmt.ColumnInt64(0))
				return nil
			},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return time.Time{}, errors.WithStack(err)
	}

	return grantedAt, nil
}

// RecordGrant implements GrantStore.
func (s *SQLiteStore) RecordGrant(ctx context.Context, address string, at time.Time) error {
	err := s.Tx(ctx, func(conn *sqlite.Conn) error {
		query := `INSERT INTO grants (address, granted_at) VALUES (?, ?)
			ON CONFLICT(address) DO UPDATE SET granted_at = excluded.granted_at`
		err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
			Args: []any{address, at.UnixMilli()},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *SQLiteStore) Do(ctx context.Context, fn func(conn *sqlite.Conn) error) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	defer s.pool.Put(conn)

	if err := fn(conn); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *SQLiteStore) Tx(ctx context.Context, fn func(conn *sqlite.Conn) error) error {
	return errors.WithStack(s.Do(ctx, func(conn *sqlite.Conn) (err error) {
		defer sqlitex.Save(conn)(&err)
		err = fn(conn)
		return errors.WithStack(err)
	}))
}

func (s *SQLiteStore) Close() error {
	return errors.WithStack(s.pool.Close())
}

func NewSQLiteStore(path string) *SQLiteStore {
	pool := sqlitemigration.NewPool(path, schema, sqlitemigration.Options{
		Flags: sqlite.OpenCreate | sqlite.OpenReadWrite | sqlite.OpenWAL,
	})

	return &SQLiteStore{
		pool: pool,
	}
}

var _ GrantStore = &SQLiteStore{}
