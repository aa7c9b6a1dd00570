package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sneakr-backend/internal/features/lists/repository"
)

func newMock(t *testing.T, ctor func(*sqlx.DB) repository.ListRepository) (repository.ListRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return ctor(sqlx.NewDb(db, "mysql")), mock
}

func TestListByUserJoinsCatalog(t *testing.T) {
	repo, mock := newMock(t, NewWishlistRepository)

	rows := sqlmock.NewRows([]string{"id", "product_id", "name", "market_value", "image_thumbnail", "created_at"}).
		AddRow(1, 7, "Air Jordan 1", 350.0, "http://img/t.jpg", time.Now())
	mock.ExpectQuery(`SELECT e.id, e.product_id, s.name, s.market_value, s.image_thumbnail, e.created_at\s+FROM wishlist_items e`).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	entries, err := repo.ListByUser(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(7), entries[0].ProductID)
	assert.Equal(t, "Air Jordan 1", entries[0].Name)
}

func TestAdd(t *testing.T) {
	repo, mock := newMock(t, NewWishlistRepository)

	mock.ExpectExec(`INSERT INTO wishlist_items \(user_id, product_id\)`).
		WithArgs(int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(11, 1))

	id, err := repo.Add(context.Background(), 3, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
}

func TestAddDuplicate(t *testing.T) {
	repo, mock := newMock(t, NewWishlistRepository)

	mock.ExpectExec(`INSERT INTO wishlist_items`).
		WithArgs(int64(3), int64(7)).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '3-7'"})

	_, err := repo.Add(context.Background(), 3, 7)
	assert.ErrorIs(t, err, repository.ErrDuplicateEntry)
}

func TestRemoveScopedToOwner(t *testing.T) {
	repo, mock := newMock(t, NewCollectionRepository)

	mock.ExpectExec(`DELETE FROM collection_items WHERE id = \? AND user_id = \?`).
		WithArgs(int64(11), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Remove(context.Background(), 11, 3))
}

func TestRemoveMissingEntry(t *testing.T) {
	repo, mock := newMock(t, NewWishlistRepository)

	mock.ExpectExec(`DELETE FROM wishlist_items WHERE id = \? AND user_id = \?`).
		WithArgs(int64(99), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Remove(context.Background(), 99, 3), repository.ErrEntryNotFound)
}

func TestClearEmptyListSucceeds(t *testing.T) {
	repo, mock := newMock(t, NewWishlistRepository)

	mock.ExpectExec(`DELETE FROM wishlist_items WHERE user_id = \?`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Clear(context.Background(), 3))
}

func TestCollectionUsesOwnTable(t *testing.T) {
	repo, mock := newMock(t, NewCollectionRepository)

	mock.ExpectExec(`INSERT INTO collection_items`).
		WithArgs(int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	_, err := repo.Add(context.Background(), 3, 7)
	assert.NoError(t, err)
}
