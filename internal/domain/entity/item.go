package entity

import "time"

// Item represents a record owned by a user.
type Item struct {
	ID          int64
	Title       string
	Description *string
	OwnerID     int64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Validate validates the Item entity fields.
func (i *Item) Validate() error {
	if i.Title == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if i.OwnerID <= 0 {
		return &ValidationError{Field: "owner_id", Message: "must be positive"}
	}
	return nil
}
