// Package schema defines the table mappings shared by the postgres and sqlite
// adapters. Only bind-variable syntax and error classification differ between
// the drivers, and those live in each driver's Dialect.
package schema

import (
	"time"

	"itemvault/internal/domain/entity"
	"itemvault/internal/infra/adapter/persistence/crud"
	"itemvault/internal/repository"
)

// User maps entity.User onto the users table.
func User() crud.Schema[entity.User, repository.UserCreate, repository.UserUpdate] {
	return crud.Schema[entity.User, repository.UserCreate, repository.UserUpdate]{
		Table: "users",
		Columns: []string{
			"id", "email", "hashed_password", "full_name",
			"active", "superuser", "created_at", "updated_at",
		},
		Scan: func(row crud.Row) (*entity.User, error) {
			var u entity.User
			if err := row.Scan(
				&u.ID, &u.Email, &u.HashedPassword, &u.FullName,
				&u.Active, &u.Superuser, &u.CreatedAt, &u.UpdatedAt,
			); err != nil {
				return nil, err
			}
			return &u, nil
		},
		InsertColumns: []string{"email", "hashed_password", "full_name", "active", "superuser"},
		InsertArgs: func(in repository.UserCreate) []any {
			return []any{in.Email, in.HashedPassword, in.FullName, in.Active, in.Superuser}
		},
		Merge: func(u *entity.User, in repository.UserUpdate) {
			if in.Email != nil {
				u.Email = *in.Email
			}
			if in.HashedPassword != nil {
				u.HashedPassword = *in.HashedPassword
			}
			if in.FullName != nil {
				u.FullName = in.FullName
			}
			if in.Active != nil {
				u.Active = *in.Active
			}
			if in.Superuser != nil {
				u.Superuser = *in.Superuser
			}
		},
		UpdateArgs: func(u *entity.User) []any {
			now := time.Now().UTC()
			return []any{
				u.Email, u.HashedPassword, u.FullName,
				u.Active, u.Superuser, u.CreatedAt, &now,
			}
		},
		ID: func(u *entity.User) int64 { return u.ID },
	}
}

// Item maps entity.Item onto the items table.
func Item() crud.Schema[entity.Item, repository.ItemCreate, repository.ItemUpdate] {
	return crud.Schema[entity.Item, repository.ItemCreate, repository.ItemUpdate]{
		Table: "items",
		Columns: []string{
			"id", "title", "description", "owner_id", "created_at", "updated_at",
		},
		Scan: func(row crud.Row) (*entity.Item, error) {
			var i entity.Item
			if err := row.Scan(
				&i.ID, &i.Title, &i.Description, &i.OwnerID,
				&i.CreatedAt, &i.UpdatedAt,
			); err != nil {
				return nil, err
			}
			return &i, nil
		},
		InsertColumns: []string{"title", "description", "owner_id"},
		InsertArgs: func(in repository.ItemCreate) []any {
			return []any{in.Title, in.Description, in.OwnerID}
		},
		Merge: func(i *entity.Item, in repository.ItemUpdate) {
			if in.Title != nil {
				i.Title = *in.Title
			}
			if in.Description != nil {
				i.Description = in.Description
			}
		},
		UpdateArgs: func(i *entity.Item) []any {
			now := time.Now().UTC()
			return []any{i.Title, i.Description, i.OwnerID, i.CreatedAt, &now}
		},
		ID: func(i *entity.Item) int64 { return i.ID },
	}
}
