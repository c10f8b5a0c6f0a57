// Package postgres provides PostgreSQL-backed repositories built on the
// generic crud layer, using the pgx stdlib driver.
package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"itemvault/internal/infra/adapter/persistence/crud"
)

// Dialect returns the PostgreSQL dialect for the crud layer.
// Constraint violations are recognized by SQLSTATE class 23
// (integrity constraint violation: unique, foreign key, not-null, check).
func Dialect() crud.Dialect {
	return crud.Dialect{
		Placeholder: func(i int) string { return fmt.Sprintf("$%d", i) },
		IsConstraintViolation: func(err error) bool {
			var pgErr *pgconn.PgError
			return errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23")
		},
	}
}
