package db

import (
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/teranos/argx/errors"
)

var (
	// ErrDatabaseClosed marks operations on a closed connection, typically a
	// history write racing shutdown.
	ErrDatabaseClosed = errors.New("database is closed")

	// ErrDatabaseBusy marks writes that gave up waiting for another argx
	// process holding the history lock.
	ErrDatabaseBusy = errors.New("database is busy")
)

// IsDatabaseClosed reports whether err comes from a closed connection.
// database/sql returns an unexported error for this, so the message is
// matched as well.
func IsDatabaseClosed(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrDatabaseClosed) {
		return true
	}
	return strings.Contains(err.Error(), "database is closed")
}

// IsBusy reports whether err is SQLite's SQLITE_BUSY or SQLITE_LOCKED.
func IsBusy(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrDatabaseBusy) {
		return true
	}
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.Code == sqlite3.ErrBusy || se.Code == sqlite3.ErrLocked
	}
	return false
}

// Classify marks err with ErrDatabaseClosed or ErrDatabaseBusy when it is
// one of those conditions, and attaches a hint for the CLI.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case IsDatabaseClosed(err):
		return errors.Mark(err, ErrDatabaseClosed)
	case IsBusy(err):
		err = errors.Mark(err, ErrDatabaseBusy)
		return errors.WithHint(err, "another argx process is writing history; retry or pass --no-record")
	}
	return err
}
