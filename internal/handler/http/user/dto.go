package user

import (
	"time"

	"itemvault/internal/domain/entity"
)

// DTO is the wire form of a user. The password hash never leaves the server.
type DTO struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	FullName  *string    `json:"full_name,omitempty"`
	Active    bool       `json:"is_active"`
	Superuser bool       `json:"is_superuser"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toDTO(u *entity.User) DTO {
	return DTO{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Active:    u.Active,
		Superuser: u.Superuser,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
