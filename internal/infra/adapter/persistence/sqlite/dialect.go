// Package sqlite provides SQLite-backed repositories built on the generic
// crud layer, using the modernc.org/sqlite driver. It exists for local
// development and tests that want a real database without a server.
package sqlite

import (
	"errors"

	sqlite3 "modernc.org/sqlite"

	"itemvault/internal/infra/adapter/persistence/crud"
)

// SQLITE_CONSTRAINT; extended codes (2067 unique, 787 foreign key, 1299
// not-null) keep it in their low byte.
const sqliteConstraint = 19

// Dialect returns the SQLite dialect for the crud layer.
func Dialect() crud.Dialect {
	return crud.Dialect{
		Placeholder: func(int) string { return "?" },
		IsConstraintViolation: func(err error) bool {
			var sqlErr *sqlite3.Error
			return errors.As(err, &sqlErr) && sqlErr.Code()&0xff == sqliteConstraint
		},
	}
}
