package repository

import (
	"context"

	"itemvault/internal/domain/entity"
)

// ItemCreate carries all fields required to construct a new item.
type ItemCreate struct {
	Title       string
	Description *string
	OwnerID     int64
}

// ItemUpdate describes a partial update. Nil fields are left unchanged.
type ItemUpdate struct {
	Title       *string
	Description *string
}

type ItemRepository interface {
	Get(ctx context.Context, id int64) (*entity.Item, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Item, error)
	ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]*entity.Item, error)
	Create(ctx context.Context, in ItemCreate) (*entity.Item, error)
	Update(ctx context.Context, existing *entity.Item, in ItemUpdate) (*entity.Item, error)
	Remove(ctx context.Context, id int64) (*entity.Item, error)
}
