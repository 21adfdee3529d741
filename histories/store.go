package histories

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/reusee/bytetape/logs"
	"github.com/reusee/bytetape/settings"
	"github.com/reusee/bytetape/storages"
)

type Run struct {
	ID       int64
	Source   string
	Hash     string
	ExitCode int
	Error    string
	Started  time.Time
	Duration time.Duration
}

func (r Run) Outcome() string {
	if r.ExitCode == 0 {
		return "ok"
	}
	return r.Error
}

func Hash(program string) string {
	sum := sha256.Sum256([]byte(program))
	return hex.EncodeToString(sum[:])
}

type Store struct {
	db *sql.DB
}

const schema = `
create table if not exists runs (
	id integer primary key autoincrement,
	source text not null,
	hash text not null,
	exit_code integer not null,
	error text not null,
	started integer not null,
	duration integer not null
)
`

func OpenStore(ctx context.Context, path string) (*Store, error) {
	db, err := storages.OpenSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create runs table: %w", err)
	}
	return &Store{
		db: db,
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Record(ctx context.Context, run *Run) error {
	return storages.WithTx(ctx, s.db, func(tx storages.Tx) error {
		res, err := tx.Exec(ctx,
			`insert into runs (source, hash, exit_code, error, started, duration) values (?, ?, ?, ?, ?, ?)`,
			run.Source,
			run.Hash,
			run.ExitCode,
			run.Error,
			run.Started.UnixNano(),
			int64(run.Duration),
		)
		if err != nil {
			return fmt.Errorf("insert run: %w", err)
		}
		run.ID, err = res.LastInsertId()
		return err
	})
}

// Recent returns at most n runs, newest first.
func (s *Store) Recent(ctx context.Context, n int) (runs []*Run, err error) {
	err = storages.WithTx(ctx, s.db, func(tx storages.Tx) error {
		rows, err := tx.Query(ctx,
			`select id, source, hash, exit_code, error, started, duration from runs order by id desc limit ?`,
			n,
		)
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			run := new(Run)
			var started, duration int64
			if err := rows.Scan(
				&run.ID,
				&run.Source,
				&run.Hash,
				&run.ExitCode,
				&run.Error,
				&started,
				&duration,
			); err != nil {
				return err
			}
			run.Started = time.Unix(0, started)
			run.Duration = time.Duration(duration)
			runs = append(runs, run)
		}
		return rows.Err()
	})
	return
}

type Open func(ctx context.Context) (*Store, error)

func (Module) Open(
	path settings.HistoryPath,
	logger logs.Logger,
) Open {
	return func(ctx context.Context) (*Store, error) {
		if path == "" {
			return nil, fmt.Errorf("history path not configured")
		}
		logger.DebugContext(ctx, "open history",
			"path", path,
		)
		return OpenStore(ctx, string(path))
	}
}
