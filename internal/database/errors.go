package database

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned by repositories when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// ConstraintError wraps a store-level constraint violation: a duplicate
// unique value, or a foreign key broken by the write (e.g. deleting a genre
// that books still reference). It is distinguishable from both ErrNotFound
// and plain infrastructure failures.
type ConstraintError struct {
	err error
}

func (e *ConstraintError) Error() string {
	return "constraint violated: " + e.err.Error()
}

func (e *ConstraintError) Unwrap() error {
	return e.err
}

// WrapError classifies a write error coming back from the driver, wrapping
// constraint violations in ConstraintError and passing everything else
// through unchanged.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return &ConstraintError{err: err}
	}

	return err
}

// IsConstraint reports whether err is (or wraps) a constraint violation.
func IsConstraint(err error) bool {
	var ce *ConstraintError
	return errors.As(err, &ce)
}
