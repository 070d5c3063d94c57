package db

import (
	"database/sql"
	"embed"
	"io/fs"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/argx/errors"
	"github.com/teranos/argx/sym"
)

//go:embed sqlite/migrations/*.sql
var migrations embed.FS

// migration is one embedded schema step. Version is the numeric prefix of
// the file name; 000 creates schema_migrations itself.
type migration struct {
	Version string
	Name    string
	SQL     string
}

// loadMigrations reads the embedded files in version order.
func loadMigrations() ([]migration, error) {
	names, err := fs.Glob(migrations, "sqlite/migrations/*.sql")
	if err != nil {
		return nil, errors.Wrap(err, "list migrations")
	}
	sort.Strings(names)

	out := make([]migration, 0, len(names))
	for _, name := range names {
		data, err := migrations.ReadFile(name)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", name)
		}
		base := name[strings.LastIndexByte(name, '/')+1:]
		version, _, _ := strings.Cut(base, "_")
		out = append(out, migration{Version: version, Name: base, SQL: string(data)})
	}
	return out, nil
}

// appliedVersions returns the versions recorded in schema_migrations, or an
// empty set on a fresh database.
func appliedVersions(db *sql.DB) (map[string]bool, error) {
	applied := map[string]bool{}

	var exists int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'schema_migrations'`).Scan(&exists)
	if err != nil {
		return nil, errors.Wrap(Classify(err), "inspect schema")
	}
	if exists == 0 {
		return applied, nil
	}

	rows, err := db.Query(`SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, errors.Wrap(Classify(err), "read schema_migrations")
	}
	defer rows.Close()
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, errors.Wrap(err, "scan schema_migrations")
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

// Migrate applies every embedded migration not yet recorded, each in its
// own transaction. A nil logger is silent.
func Migrate(db *sql.DB, logger *zap.SugaredLogger) error {
	all, err := loadMigrations()
	if err != nil {
		return err
	}
	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	count := 0
	for _, m := range all {
		if applied[m.Version] {
			continue
		}
		if logger != nil {
			logger.Debugw("Applying migration", "migration", m.Name, "version", m.Version)
		}
		if err := apply(db, m); err != nil {
			return err
		}
		count++
	}

	if logger != nil {
		logger.Debugw("Schema up to date",
			"symbol", sym.DB,
			"applied", count,
			"total_migrations", len(all),
		)
	}
	return nil
}

func apply(db *sql.DB, m migration) error {
	tx, err := db.Begin()
	if err != nil {
		return errors.Wrapf(Classify(err), "begin tx for %s", m.Name)
	}
	if _, err := tx.Exec(m.SQL); err != nil {
		tx.Rollback()
		return errors.Wrapf(err, "execute %s", m.Name)
	}
	if _, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, m.Version); err != nil {
		tx.Rollback()
		return errors.Wrapf(err, "record %s", m.Name)
	}
	return errors.Wrapf(tx.Commit(), "commit %s", m.Name)
}

// SchemaVersion returns the highest applied migration version, or "" for
// an unmigrated database.
func SchemaVersion(db *sql.DB) (string, error) {
	applied, err := appliedVersions(db)
	if err != nil {
		return "", err
	}
	latest := ""
	for v := range applied {
		if v > latest {
			latest = v
		}
	}
	return latest, nil
}
