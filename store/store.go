package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/argx/db"
	"github.com/teranos/argx/errors"
	"github.com/teranos/argx/sym"
)

// DefaultListLimit caps List when no limit is given.
const DefaultListLimit = 20

// RunStore persists runs in the runs and run_extensions tables.
type RunStore struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewRunStore wraps an open, migrated database. A nil logger discards output.
func NewRunStore(conn *sql.DB, logger *zap.SugaredLogger) *RunStore {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &RunStore{db: conn, logger: logger.Named("store")}
}

// Record inserts run and its extensions in one transaction. A missing ID or
// timestamp is filled in.
func (s *RunStore) Record(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapDB(err, "begin transaction for run %s", run.ID)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (
			id, problem, semantics, file, argument, arguments, attacks,
			answer, extensions, duration_ms, status, error, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Problem, run.Semantics, run.File, nullString(run.Argument),
		run.Arguments, run.Attacks, nullString(run.Answer), nullInt(run.Count),
		run.DurationMS, string(run.Status), nullString(run.Error), run.CreatedAt,
	)
	if err != nil {
		return wrapDB(err, "insert run %s", run.ID)
	}

	for i, members := range run.Extensions {
		data, err := json.Marshal(members)
		if err != nil {
			return errors.Wrapf(err, "encode extension %d", i)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_extensions (run_id, position, members) VALUES (?, ?, ?)`,
			run.ID, i, string(data)); err != nil {
			return wrapDB(err, "insert extension %d of run %s", i, run.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return wrapDB(err, "commit run %s", run.ID)
	}

	s.logger.Debugw("Recorded run",
		"symbol", sym.DB,
		"run_id", run.ID,
		"problem", run.Problem,
		"status", run.Status,
		"extensions", len(run.Extensions))
	return nil
}

const runColumns = `id, problem, semantics, file, argument, arguments, attacks,
	answer, extensions, duration_ms, status, error, created_at`

// List returns the most recent runs first, without their extensions.
func (s *RunStore) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, wrapDB(err, "list runs")
	}
	defer rows.Close()

	runs := make([]Run, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDB(err, "iterate runs")
	}
	return runs, nil
}

// Get loads one run with its extensions. id may be a unique prefix of the
// full run id.
func (s *RunStore) Get(ctx context.Context, id string) (*Run, error) {
	if id == "" {
		return nil, errors.NewNotFoundError("empty run id")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs WHERE id LIKE ? || '%' ORDER BY id LIMIT 2`, id)
	if err != nil {
		return nil, wrapDB(err, "get run %s", id)
	}
	var matches []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		matches = append(matches, run)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, wrapDB(err, "get run %s", id)
	}

	switch len(matches) {
	case 0:
		return nil, errors.NewNotFoundError("run %s", id)
	case 2:
		err := errors.Newf("run id prefix %q is ambiguous", id)
		return nil, errors.WithHint(err, "give more characters of the id")
	}

	run := matches[0]
	if err := s.loadExtensions(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

func (s *RunStore) loadExtensions(ctx context.Context, run *Run) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT members FROM run_extensions WHERE run_id = ? ORDER BY position`, run.ID)
	if err != nil {
		return wrapDB(err, "load extensions of run %s", run.ID)
	}
	defer rows.Close()

	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return wrapDB(err, "scan extension of run %s", run.ID)
		}
		var members []string
		if err := json.Unmarshal([]byte(raw), &members); err != nil {
			return errors.Wrapf(err, "decode extension of run %s", run.ID)
		}
		run.Extensions = append(run.Extensions, members)
	}
	return rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*Run, error) {
	var (
		run                   Run
		argument, answer, msg sql.NullString
		count                 sql.NullInt64
		status                string
	)
	err := row.Scan(&run.ID, &run.Problem, &run.Semantics, &run.File, &argument,
		&run.Arguments, &run.Attacks, &answer, &count, &run.DurationMS,
		&status, &msg, &run.CreatedAt)
	if err != nil {
		return nil, wrapDB(err, "scan run")
	}

	run.Argument = argument.String
	run.Answer = answer.String
	run.Error = msg.String
	run.Status = Status(status)
	if count.Valid {
		n := int(count.Int64)
		run.Count = &n
	}
	return &run, nil
}

func wrapDB(err error, format string, args ...interface{}) error {
	return errors.Wrapf(db.Classify(err), format, args...)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}
