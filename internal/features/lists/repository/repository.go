package repository

import (
	"context"
	"errors"

	"sneakr-backend/internal/features/lists/models"
)

var (
	ErrEntryNotFound  = errors.New("entry not found")
	ErrDuplicateEntry = errors.New("entry already exists")
)

// ListRepository backs one user↔sneaker join table. The wishlist and
// the collection share the contract; only the table differs.
type ListRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Entry, error)
	// Add inserts an entry and returns its id. The (user, product)
	// pair is unique; a second insert fails with ErrDuplicateEntry.
	Add(ctx context.Context, userID, productID int64) (int64, error)
	// Remove deletes one entry. Scoped to the owner: removing someone
	// else's entry reports ErrEntryNotFound.
	Remove(ctx context.Context, entryID, userID int64) error
	// Clear deletes all of a user's entries. Clearing an empty list
	// is not an error.
	Clear(ctx context.Context, userID int64) error
}
