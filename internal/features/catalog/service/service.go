package service

import (
	"context"
	"errors"
	"math"

	"sneakr-backend/internal/features/catalog/models"
	"sneakr-backend/internal/features/catalog/repository"
)

var ErrSneakerNotFound = errors.New("sneaker not found")

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

type CatalogService interface {
	// ListSneakers runs the count and the page as two independent
	// round trips; a concurrent insert between them can skew
	// totalPages against the returned page. Accepted, not corrected.
	ListSneakers(ctx context.Context, page, limit int, f models.Filters) (*models.Page, error)
	SearchSneakers(ctx context.Context, f models.Filters) ([]models.Sneaker, error)
	GetSneaker(ctx context.Context, id int64) (*models.Sneaker, error)
}

type catalogService struct {
	repo repository.CatalogRepository
}

func NewCatalogService(repo repository.CatalogRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) ListSneakers(ctx context.Context, page, limit int, f models.Filters) (*models.Page, error) {
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * limit
	items, err := s.repo.List(ctx, f, limit, offset)
	if err != nil {
		return nil, err
	}

	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}

	return &models.Page{
		Items:       items,
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

func (s *catalogService) SearchSneakers(ctx context.Context, f models.Filters) ([]models.Sneaker, error) {
	return s.repo.ListAll(ctx, f)
}

func (s *catalogService) GetSneaker(ctx context.Context, id int64) (*models.Sneaker, error) {
	sneaker, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSneakerNotFound) {
			return nil, ErrSneakerNotFound
		}
		return nil, err
	}
	return sneaker, nil
}
