package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"itemvault/internal/domain/entity"
	"itemvault/internal/repository"
)

// CreateInput represents the input parameters for creating a new user.
type CreateInput struct {
	Email     string
	Password  string
	FullName  *string
	Active    bool
	Superuser bool
}

// UpdateInput represents the input parameters for updating an existing user.
// Nil fields will not be updated.
type UpdateInput struct {
	ID        int64
	Email     *string
	Password  *string
	FullName  *string
	Active    *bool
	Superuser *bool
}

// Service provides user management use cases.
// It handles business logic for user operations and delegates persistence to
// the repository.
type Service struct {
	Repo repository.UserRepository
}

// Get retrieves a user by ID.
// Returns ErrUserNotFound if no user with the given ID exists.
func (s *Service) Get(ctx context.Context, id int64) (*entity.User, error) {
	if id <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	u, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// GetByEmail retrieves a user by email address.
// Returns ErrUserNotFound if no user with the given email exists.
func (s *Service) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// List retrieves up to limit users starting at offset.
func (s *Service) List(ctx context.Context, offset, limit int) ([]*entity.User, error) {
	users, err := s.Repo.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Create creates a new user with a bcrypt-hashed password.
// Returns ErrEmailTaken if a user with the same email already exists.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.User, error) {
	if in.Email == "" {
		return nil, &entity.ValidationError{Field: "email", Message: "is required"}
	}
	if in.Password == "" {
		return nil, &entity.ValidationError{Field: "password", Message: "is required"}
	}

	existing, err := s.Repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.Repo.Create(ctx, repository.UserCreate{
		Email:          in.Email,
		HashedPassword: string(hashed),
		FullName:       in.FullName,
		Active:         in.Active,
		Superuser:      in.Superuser,
	})
	if err != nil {
		// The unique index is the source of truth; the pre-check above only
		// gives a friendlier fast path.
		if errors.Is(err, entity.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// Update modifies an existing user. Nil fields are left unchanged.
// Returns ErrUserNotFound if the user does not exist and ErrEmailTaken if the
// new email collides with another account.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.User, error) {
	if in.ID <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	existing, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}

	patch := repository.UserUpdate{
		Email:     in.Email,
		FullName:  in.FullName,
		Active:    in.Active,
		Superuser: in.Superuser,
	}
	if in.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		h := string(hashed)
		patch.HashedPassword = &h
	}

	updated, err := s.Repo.Update(ctx, existing, patch)
	if err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return nil, ErrEmailTaken
		}
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

// Delete removes a user by ID and returns the deleted record.
// Returns ErrUserNotFound if the user does not exist.
func (s *Service) Delete(ctx context.Context, id int64) (*entity.User, error) {
	if id <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	deleted, err := s.Repo.Remove(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return deleted, nil
}

// Authenticate verifies an email/password pair against the stored hash.
// Returns ErrInvalidCredentials on any mismatch or inactive account.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if u == nil {
		// Burn a comparison anyway to keep timing close to the found case.
		_ = bcrypt.CompareHashAndPassword(
			[]byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5B0xc/RMeOMPrGrLn0Nq1p1pZC4Im"),
			[]byte(password))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.Active {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
