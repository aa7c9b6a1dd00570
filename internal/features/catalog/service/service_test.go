package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sneakr-backend/internal/features/catalog/models"
	"sneakr-backend/internal/features/catalog/repository"
)

type mockCatalogRepo struct {
	mock.Mock
}

func (m *mockCatalogRepo) List(ctx context.Context, f models.Filters, limit, offset int) ([]models.Sneaker, error) {
	args := m.Called(ctx, f, limit, offset)
	return args.Get(0).([]models.Sneaker), args.Error(1)
}

func (m *mockCatalogRepo) ListAll(ctx context.Context, f models.Filters) ([]models.Sneaker, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Sneaker), args.Error(1)
}

func (m *mockCatalogRepo) Count(ctx context.Context, f models.Filters) (int, error) {
	args := m.Called(ctx, f)
	return args.Int(0), args.Error(1)
}

func (m *mockCatalogRepo) GetByID(ctx context.Context, id int64) (*models.Sneaker, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*models.Sneaker), args.Error(1)
	}
	return nil, args.Error(1)
}

func sneakers(n int) []models.Sneaker {
	out := make([]models.Sneaker, n)
	for i := range out {
		out[i] = models.Sneaker{ID: int64(i + 1), Name: "Shoe"}
	}
	return out
}

func TestListSneakersPageMath(t *testing.T) {
	// 12 items, limit 5, page 2 → 5 items, 3 pages.
	repo := &mockCatalogRepo{}
	repo.On("Count", mock.Anything, models.Filters{}).Return(12, nil)
	repo.On("List", mock.Anything, models.Filters{}, 5, 5).Return(sneakers(5), nil)

	page, err := NewCatalogService(repo).ListSneakers(context.Background(), 2, 5, models.Filters{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 12, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.CurrentPage)
	repo.AssertExpectations(t)
}

func TestListSneakersExactMultiple(t *testing.T) {
	repo := &mockCatalogRepo{}
	repo.On("Count", mock.Anything, models.Filters{}).Return(20, nil)
	repo.On("List", mock.Anything, models.Filters{}, 10, 0).Return(sneakers(10), nil)

	page, err := NewCatalogService(repo).ListSneakers(context.Background(), 1, 10, models.Filters{})
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalPages)
}

func TestListSneakersEmptyCatalog(t *testing.T) {
	repo := &mockCatalogRepo{}
	repo.On("Count", mock.Anything, models.Filters{}).Return(0, nil)
	repo.On("List", mock.Anything, models.Filters{}, 10, 0).Return(sneakers(0), nil)

	page, err := NewCatalogService(repo).ListSneakers(context.Background(), 1, 10, models.Filters{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
}

func TestListSneakersZeroLimitPassesThrough(t *testing.T) {
	repo := &mockCatalogRepo{}
	repo.On("Count", mock.Anything, models.Filters{}).Return(12, nil)
	repo.On("List", mock.Anything, models.Filters{}, 0, 0).Return(sneakers(0), nil)

	page, err := NewCatalogService(repo).ListSneakers(context.Background(), 1, 0, models.Filters{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
}

func TestGetSneakerNotFound(t *testing.T) {
	repo := &mockCatalogRepo{}
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, repository.ErrSneakerNotFound)

	_, err := NewCatalogService(repo).GetSneaker(context.Background(), 99)
	assert.ErrorIs(t, err, ErrSneakerNotFound)
}
