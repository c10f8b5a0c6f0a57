package repository

import (
	"context"

	"itemvault/internal/domain/entity"
)

// UserCreate carries all fields required to construct a new user.
// The password is expected to be hashed before it reaches the repository.
type UserCreate struct {
	Email          string
	HashedPassword string
	FullName       *string
	Active         bool
	Superuser      bool
}

// UserUpdate describes a partial update. Nil fields are left unchanged.
type UserUpdate struct {
	Email          *string
	HashedPassword *string
	FullName       *string
	Active         *bool
	Superuser      *bool
}

type UserRepository interface {
	Get(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, offset, limit int) ([]*entity.User, error)
	Create(ctx context.Context, in UserCreate) (*entity.User, error)
	Update(ctx context.Context, existing *entity.User, in UserUpdate) (*entity.User, error)
	Remove(ctx context.Context, id int64) (*entity.User, error)
}
