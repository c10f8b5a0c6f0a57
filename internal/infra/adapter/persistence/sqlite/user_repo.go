package sqlite

import (
	"context"
	"database/sql"

	"itemvault/internal/domain/entity"
	"itemvault/internal/infra/adapter/persistence/crud"
	"itemvault/internal/infra/adapter/persistence/schema"
	"itemvault/internal/repository"
)

type UserRepo struct {
	*crud.Base[entity.User, repository.UserCreate, repository.UserUpdate]
}

func NewUserRepo(db *sql.DB) repository.UserRepository {
	return &UserRepo{crud.New(db, Dialect(), schema.User())}
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.GetBy(ctx, "email", email)
}
