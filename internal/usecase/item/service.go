package item

import (
	"context"
	"errors"
	"fmt"

	"itemvault/internal/domain/entity"
	"itemvault/internal/repository"
)

// CreateInput represents the input parameters for creating a new item.
type CreateInput struct {
	Title       string
	Description *string
	OwnerID     int64
}

// UpdateInput represents the input parameters for updating an existing item.
// Nil fields will not be updated.
type UpdateInput struct {
	ID          int64
	Title       *string
	Description *string
}

// Service provides item management use cases.
type Service struct {
	Repo repository.ItemRepository
}

// Get retrieves an item by ID.
// Returns ErrItemNotFound if no item with the given ID exists.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Item, error) {
	if id <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	it, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if it == nil {
		return nil, ErrItemNotFound
	}
	return it, nil
}

// List retrieves up to limit items starting at offset.
func (s *Service) List(ctx context.Context, offset, limit int) ([]*entity.Item, error) {
	items, err := s.Repo.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// ListByOwner retrieves up to limit items belonging to one user.
func (s *Service) ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]*entity.Item, error) {
	if ownerID <= 0 {
		return nil, &entity.ValidationError{Field: "owner_id", Message: "must be positive"}
	}
	items, err := s.Repo.ListByOwner(ctx, ownerID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list items by owner: %w", err)
	}
	return items, nil
}

// Create creates a new item.
// Returns ErrOwnerNotFound if the owner foreign key cannot be satisfied.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Item, error) {
	if in.Title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}
	if in.OwnerID <= 0 {
		return nil, &entity.ValidationError{Field: "owner_id", Message: "must be positive"}
	}

	created, err := s.Repo.Create(ctx, repository.ItemCreate{
		Title:       in.Title,
		Description: in.Description,
		OwnerID:     in.OwnerID,
	})
	if err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("create item: %w", err)
	}
	return created, nil
}

// Update modifies an existing item. Nil fields are left unchanged.
// Returns ErrItemNotFound if the item does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Item, error) {
	if in.ID <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	if in.Title != nil && *in.Title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "cannot be empty"}
	}

	existing, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if existing == nil {
		return nil, ErrItemNotFound
	}

	updated, err := s.Repo.Update(ctx, existing, repository.ItemUpdate{
		Title:       in.Title,
		Description: in.Description,
	})
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("update item: %w", err)
	}
	return updated, nil
}

// Delete removes an item by ID and returns the deleted record.
// Returns ErrItemNotFound if the item does not exist.
func (s *Service) Delete(ctx context.Context, id int64) (*entity.Item, error) {
	if id <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	deleted, err := s.Repo.Remove(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("delete item: %w", err)
	}
	return deleted, nil
}
