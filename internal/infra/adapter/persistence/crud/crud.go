// Package crud provides a generic data-access layer over a single SQL table.
// A Base is parameterized over an entity type, its creation input and its
// update input, so each concrete repository is produced by instantiating the
// generic with a Schema instead of repeating per-entity boilerplate.
//
// The Base holds no state beyond the *sql.DB handle it was given; every
// operation is a single statement, so atomicity and isolation come from the
// database. Absence is reported explicitly (Get returns nil, nil) and the only
// error kinds surfaced for domain callers are entity.ErrNotFound and
// entity.ErrConflict.
package crud

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"itemvault/internal/domain/entity"
)

// Row abstracts *sql.Row and *sql.Rows so one scan function serves both.
type Row interface {
	Scan(dest ...any) error
}

// Dialect carries the driver-specific pieces of SQL generation and error
// classification.
type Dialect struct {
	// Placeholder returns the bind-variable syntax for the i-th parameter,
	// 1-based ("$1" for postgres, "?" for sqlite).
	Placeholder func(i int) string

	// IsConstraintViolation reports whether err is a uniqueness, foreign-key
	// or not-null violation raised by the driver.
	IsConstraintViolation func(err error) bool
}

// Schema maps one entity type onto one table.
// Columns lists every column with the primary key first; Scan must read them
// in the same order.
type Schema[E, C, U any] struct {
	Table   string
	Columns []string

	// Scan reads one row (in Columns order) into a new entity.
	Scan func(row Row) (*E, error)

	// InsertColumns and InsertArgs describe the INSERT statement for a
	// creation input. Generated columns (id, timestamps) are omitted.
	InsertColumns []string
	InsertArgs    func(in C) []any

	// Merge applies the fields present in the update input onto the entity.
	// Absent fields must be left untouched.
	Merge func(e *E, in U)

	// UpdateArgs returns the values for Columns[1:] of a merged entity.
	UpdateArgs func(e *E) []any

	// ID returns the primary key of an entity.
	ID func(e *E) int64
}

// Base implements Get/List/Create/Update/Remove for one table.
type Base[E, C, U any] struct {
	db *sql.DB
	d  Dialect
	s  Schema[E, C, U]
}

// New builds a Base over the given handle, dialect and schema.
func New[E, C, U any](db *sql.DB, d Dialect, s Schema[E, C, U]) *Base[E, C, U] {
	return &Base[E, C, U]{db: db, d: d, s: s}
}

// DB exposes the underlying handle for repository-specific queries.
func (b *Base[E, C, U]) DB() *sql.DB { return b.db }

// Dialect exposes the dialect for repository-specific queries.
func (b *Base[E, C, U]) Dialect() Dialect { return b.d }

// Get looks an entity up by primary key.
// It returns nil, nil when no row matches; absence is not an error here, the
// caller decides whether it is.
func (b *Base[E, C, U]) Get(ctx context.Context, id int64) (*E, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = %s LIMIT 1",
		strings.Join(b.s.Columns, ", "), b.s.Table, b.s.Columns[0], b.d.Placeholder(1))

	e, err := b.s.Scan(b.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return e, nil
}

// GetBy looks an entity up by an arbitrary schema column.
// Column names come from the schema, never from request input.
func (b *Base[E, C, U]) GetBy(ctx context.Context, column string, value any) (*E, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = %s LIMIT 1",
		strings.Join(b.s.Columns, ", "), b.s.Table, column, b.d.Placeholder(1))

	e, err := b.s.Scan(b.db.QueryRowContext(ctx, query, value))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetBy %s: %w", column, err)
	}
	return e, nil
}

// List returns up to limit entities starting at offset, in primary-key order.
// A limit of zero yields an empty slice without touching the database.
func (b *Base[E, C, U]) List(ctx context.Context, offset, limit int) ([]*E, error) {
	if err := checkWindow(offset, limit); err != nil {
		return nil, err
	}
	if limit == 0 {
		return []*E{}, nil
	}

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s ASC LIMIT %s OFFSET %s",
		strings.Join(b.s.Columns, ", "), b.s.Table, b.s.Columns[0],
		b.d.Placeholder(1), b.d.Placeholder(2))

	return b.queryMany(ctx, "List", query, limit, offset)
}

// ListBy returns up to limit entities whose column equals value, in
// primary-key order.
func (b *Base[E, C, U]) ListBy(ctx context.Context, column string, value any, offset, limit int) ([]*E, error) {
	if err := checkWindow(offset, limit); err != nil {
		return nil, err
	}
	if limit == 0 {
		return []*E{}, nil
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = %s ORDER BY %s ASC LIMIT %s OFFSET %s",
		strings.Join(b.s.Columns, ", "), b.s.Table, column, b.d.Placeholder(1),
		b.s.Columns[0], b.d.Placeholder(2), b.d.Placeholder(3))

	return b.queryMany(ctx, "ListBy "+column, query, value, limit, offset)
}

// Create persists a new entity built from the input and returns the persisted
// form, including the generated identifier and timestamps.
func (b *Base[E, C, U]) Create(ctx context.Context, in C) (*E, error) {
	placeholders := make([]string, len(b.s.InsertColumns))
	for i := range placeholders {
		placeholders[i] = b.d.Placeholder(i + 1)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		b.s.Table,
		strings.Join(b.s.InsertColumns, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(b.s.Columns, ", "))

	e, err := b.s.Scan(b.db.QueryRowContext(ctx, query, b.s.InsertArgs(in)...))
	if err != nil {
		if b.d.IsConstraintViolation(err) {
			return nil, fmt.Errorf("Create: %w", entity.ErrConflict)
		}
		return nil, fmt.Errorf("Create: %w", err)
	}
	return e, nil
}

// Update merges the fields present in the input onto the existing entity,
// persists the merged result in a single statement and returns the stored
// form. Fields absent from the input are untouched.
func (b *Base[E, C, U]) Update(ctx context.Context, existing *E, in U) (*E, error) {
	merged := *existing
	b.s.Merge(&merged, in)

	assignments := make([]string, 0, len(b.s.Columns)-1)
	for i, col := range b.s.Columns[1:] {
		assignments = append(assignments, fmt.Sprintf("%s = %s", col, b.d.Placeholder(i+1)))
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = %s RETURNING %s",
		b.s.Table,
		strings.Join(assignments, ", "),
		b.s.Columns[0], b.d.Placeholder(len(b.s.Columns)),
		strings.Join(b.s.Columns, ", "))

	args := append(b.s.UpdateArgs(&merged), b.s.ID(&merged))
	e, err := b.s.Scan(b.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	if err != nil {
		if b.d.IsConstraintViolation(err) {
			return nil, fmt.Errorf("Update: %w", entity.ErrConflict)
		}
		return nil, fmt.Errorf("Update: %w", err)
	}
	return e, nil
}

// Remove deletes the row with the given identifier and returns the value that
// was deleted. It fails with entity.ErrNotFound if no such row exists.
func (b *Base[E, C, U]) Remove(ctx context.Context, id int64) (*E, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = %s RETURNING %s",
		b.s.Table, b.s.Columns[0], b.d.Placeholder(1),
		strings.Join(b.s.Columns, ", "))

	e, err := b.s.Scan(b.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("Remove: %w", entity.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("Remove: %w", err)
	}
	return e, nil
}

func (b *Base[E, C, U]) queryMany(ctx context.Context, op, query string, args ...any) ([]*E, error) {
	rows, err := b.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]*E, 0, 50)
	for rows.Next() {
		e, err := b.s.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func checkWindow(offset, limit int) error {
	if offset < 0 {
		return &entity.ValidationError{Field: "offset", Message: "must be non-negative"}
	}
	if limit < 0 {
		return &entity.ValidationError{Field: "limit", Message: "must be non-negative"}
	}
	return nil
}
