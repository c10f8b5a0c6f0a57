package user_test

import (
	"context"
	"time"

	"itemvault/internal/domain/entity"
	"itemvault/internal/repository"
)

// Minimal in-memory UserRepository shared by the handler tests.
type stubRepo struct {
	data   map[int64]*entity.User
	nextID int64
	err    error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.User{}, nextID: 1}
}

func (s *stubRepo) seed(u entity.User) *entity.User {
	if u.ID == 0 {
		u.ID = s.nextID
		s.nextID++
	} else if u.ID >= s.nextID {
		s.nextID = u.ID + 1
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	s.data[u.ID] = &u
	return &u
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.User, error) {
	return s.data[id], s.err
}

func (s *stubRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.data {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) List(_ context.Context, offset, limit int) ([]*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*entity.User, 0, len(s.data))
	for _, u := range s.data {
		out = append(out, u)
	}
	return out, nil
}

func (s *stubRepo) Create(_ context.Context, in repository.UserCreate) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.data {
		if u.Email == in.Email {
			return nil, entity.ErrConflict
		}
	}
	return s.seed(entity.User{
		Email:          in.Email,
		HashedPassword: in.HashedPassword,
		FullName:       in.FullName,
		Active:         in.Active,
		Superuser:      in.Superuser,
	}), nil
}

func (s *stubRepo) Update(_ context.Context, existing *entity.User, in repository.UserUpdate) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u := *existing
	if in.Email != nil {
		for _, other := range s.data {
			if other.ID != u.ID && other.Email == *in.Email {
				return nil, entity.ErrConflict
			}
		}
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
	now := time.Now().UTC()
	u.UpdatedAt = &now
	s.data[u.ID] = &u
	return &u, nil
}

func (s *stubRepo) Remove(_ context.Context, id int64) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.data[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	delete(s.data, id)
	return u, nil
}
