// Package item provides use cases for managing items.
package item

import "errors"

// Sentinel errors for item use case operations.
var (
	// ErrItemNotFound indicates that the requested item was not found.
	ErrItemNotFound = errors.New("item not found")

	// ErrOwnerNotFound indicates that the referenced owner does not exist.
	// Creating an item for a missing user violates the foreign key.
	ErrOwnerNotFound = errors.New("owner not found")
)
