package sqlite

import (
	"context"
	"database/sql"

	"itemvault/internal/domain/entity"
	"itemvault/internal/infra/adapter/persistence/crud"
	"itemvault/internal/infra/adapter/persistence/schema"
	"itemvault/internal/repository"
)

type ItemRepo struct {
	*crud.Base[entity.Item, repository.ItemCreate, repository.ItemUpdate]
}

func NewItemRepo(db *sql.DB) repository.ItemRepository {
	return &ItemRepo{crud.New(db, Dialect(), schema.Item())}
}

func (r *ItemRepo) ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]*entity.Item, error) {
	return r.ListBy(ctx, "owner_id", ownerID, offset, limit)
}
