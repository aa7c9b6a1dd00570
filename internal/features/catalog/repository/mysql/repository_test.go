package mysql

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sneakr-backend/internal/features/catalog/models"
	"sneakr-backend/internal/features/catalog/repository"
)

func newMock(t *testing.T) (repository.CatalogRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewMySQLRepository(sqlx.NewDb(db, "mysql")), mock
}

func sneakerRows(ids ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "name", "brand", "colorway", "market_value", "gender",
		"image_original", "image_thumbnail", "release_date",
	})
	for _, id := range ids {
		rows.AddRow(id, "Air Jordan 1", "Jordan", "Bred", 350.0, "men", "http://img/o.jpg", "http://img/t.jpg", "2019-05-04")
	}
	return rows
}

func TestListNoFilters(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM sneakers ORDER BY id LIMIT \? OFFSET \?`).
		WithArgs(10, 0).
		WillReturnRows(sneakerRows(1, 2))

	items, err := repo.List(context.Background(), models.Filters{}, 10, 0)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Jordan", items[0].Brand)
}

func TestListAllFilters(t *testing.T) {
	repo, mock := newMock(t)

	min, max := 100.0, 500.0
	f := models.Filters{
		Brand:          "Jordan",
		Gender:         "men",
		Character:      "Air",
		MinMarketValue: &min,
		MaxMarketValue: &max,
	}

	mock.ExpectQuery(`SELECT .+ FROM sneakers WHERE brand = \? AND gender = \? AND market_value >= \? AND market_value <= \? AND name LIKE \? ORDER BY id LIMIT \? OFFSET \?`).
		WithArgs("Jordan", "men", 100.0, 500.0, "%Air%", 5, 5).
		WillReturnRows(sneakerRows(3))

	items, err := repo.List(context.Background(), f, 5, 5)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCountSharesPredicate(t *testing.T) {
	repo, mock := newMock(t)

	f := models.Filters{Brand: "Nike"}
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sneakers WHERE brand = \?`).
		WithArgs("Nike").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.Count(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, 42, count)
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT .+ FROM sneakers WHERE id = \?`).
		WithArgs(int64(99)).
		WillReturnRows(sneakerRows())

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, repository.ErrSneakerNotFound)
}
