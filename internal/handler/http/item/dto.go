package item

import (
	"time"

	"itemvault/internal/domain/entity"
)

// DTO is the wire form of an item.
type DTO struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	OwnerID     int64      `json:"owner_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func toDTO(i *entity.Item) DTO {
	return DTO{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		OwnerID:     i.OwnerID,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
