package repository

import (
	"context"
	"errors"

	"sneakr-backend/internal/features/catalog/models"
)

var ErrSneakerNotFound = errors.New("sneaker not found")

type CatalogRepository interface {
	// List returns one page of matching sneakers. limit < 0 is passed
	// through and surfaces as a store error.
	List(ctx context.Context, f models.Filters, limit, offset int) ([]models.Sneaker, error)
	// ListAll returns every matching sneaker, unpaginated.
	ListAll(ctx context.Context, f models.Filters) ([]models.Sneaker, error)
	// Count returns the number of rows matching the same predicate,
	// ignoring pagination.
	Count(ctx context.Context, f models.Filters) (int, error)
	GetByID(ctx context.Context, id int64) (*models.Sneaker, error)
}
