package repositories

import (
	"database/sql"
	"errors"
)

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrDatabaseError is returned for unexpected database errors.
	// It wraps the more specific driver error.
	ErrDatabaseError = errors.New("database error")

	// ErrDuplicateKey is returned when an insert violates a unique
	// constraint, e.g. two transactions racing for one receipt code.
	ErrDuplicateKey = errors.New("duplicate key value violates unique constraint")

	// ErrStockConflict is returned when a guarded stock decrement matches
	// no row, meaning the item vanished or its stock fell below the
	// requested quantity between check and write.
	ErrStockConflict = errors.New("stock decrement precondition failed")
)

// SQLExecutor is satisfied by both *sql.DB and *sql.Tx so that repository
// methods can run inside a service-owned transaction or standalone.
type SQLExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	Query(query string, args ...interface{}) (*sql.Rows, error)
}

// scanner is satisfied by *sql.Row and *sql.Rows for shared scan helpers.
type scanner interface {
	Scan(dest ...interface{}) error
}
