package item_test

import (
	"context"
	"time"

	"itemvault/internal/domain/entity"
	"itemvault/internal/repository"
)

// Minimal in-memory ItemRepository shared by the handler tests.
type stubRepo struct {
	data     map[int64]*entity.Item
	nextID   int64
	ownerIDs map[int64]bool
	err      error
}

func newStub(owners ...int64) *stubRepo {
	s := &stubRepo{
		data:     map[int64]*entity.Item{},
		nextID:   1,
		ownerIDs: map[int64]bool{},
	}
	for _, id := range owners {
		s.ownerIDs[id] = true
	}
	return s
}

func (s *stubRepo) seed(i entity.Item) *entity.Item {
	if i.ID == 0 {
		i.ID = s.nextID
		s.nextID++
	} else if i.ID >= s.nextID {
		s.nextID = i.ID + 1
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now().UTC()
	}
	s.data[i.ID] = &i
	return &i
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Item, error) {
	return s.data[id], s.err
}

func (s *stubRepo) List(_ context.Context, offset, limit int) ([]*entity.Item, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*entity.Item, 0, len(s.data))
	for _, i := range s.data {
		out = append(out, i)
	}
	return out, nil
}

func (s *stubRepo) ListByOwner(_ context.Context, ownerID int64, offset, limit int) ([]*entity.Item, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*entity.Item, 0, len(s.data))
	for _, i := range s.data {
		if i.OwnerID == ownerID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (s *stubRepo) Create(_ context.Context, in repository.ItemCreate) (*entity.Item, error) {
	if s.err != nil {
		return nil, s.err
	}
	if !s.ownerIDs[in.OwnerID] {
		return nil, entity.ErrConflict
	}
	return s.seed(entity.Item{
		Title:       in.Title,
		Description: in.Description,
		OwnerID:     in.OwnerID,
	}), nil
}

func (s *stubRepo) Update(_ context.Context, existing *entity.Item, in repository.ItemUpdate) (*entity.Item, error) {
	if s.err != nil {
		return nil, s.err
	}
	i := *existing
	if in.Title != nil {
		i.Title = *in.Title
	}
	if in.Description != nil {
		i.Description = in.Description
	}
	now := time.Now().UTC()
	i.UpdatedAt = &now
	s.data[i.ID] = &i
	return &i, nil
}

func (s *stubRepo) Remove(_ context.Context, id int64) (*entity.Item, error) {
	if s.err != nil {
		return nil, s.err
	}
	i, ok := s.data[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	delete(s.data, id)
	return i, nil
}
