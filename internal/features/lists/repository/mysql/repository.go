package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"sneakr-backend/internal/features/lists/models"
	"sneakr-backend/internal/features/lists/repository"
)

const errDupEntry = 1062

// mysqlRepository serves one join table; the table name comes from the
// constructor, never from request input.
type mysqlRepository struct {
	db    *sqlx.DB
	table string
}

func NewWishlistRepository(db *sqlx.DB) repository.ListRepository {
	return &mysqlRepository{db: db, table: "wishlist_items"}
}

func NewCollectionRepository(db *sqlx.DB) repository.ListRepository {
	return &mysqlRepository{db: db, table: "collection_items"}
}

func (r *mysqlRepository) ListByUser(ctx context.Context, userID int64) ([]models.Entry, error) {
	query := fmt.Sprintf(`
		SELECT e.id, e.product_id, s.name, s.market_value, s.image_thumbnail, e.created_at
		FROM %s e
		JOIN sneakers s ON s.id = e.product_id
		WHERE e.user_id = ?
		ORDER BY e.created_at, e.id
	`, r.table)

	entries := []models.Entry{}
	if err := r.db.SelectContext(ctx, &entries, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.table, err)
	}
	return entries, nil
}

func (r *mysqlRepository) Add(ctx context.Context, userID, productID int64) (int64, error) {
	query := fmt.Sprintf(`INSERT INTO %s (user_id, product_id) VALUES (?, ?)`, r.table)

	res, err := r.db.ExecContext(ctx, query, userID, productID)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == errDupEntry {
			return 0, repository.ErrDuplicateEntry
		}
		return 0, fmt.Errorf("failed to add to %s: %w", r.table, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read insert id: %w", err)
	}
	return id, nil
}

func (r *mysqlRepository) Remove(ctx context.Context, entryID, userID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ? AND user_id = ?`, r.table)

	res, err := r.db.ExecContext(ctx, query, entryID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove from %s: %w", r.table, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return repository.ErrEntryNotFound
	}
	return nil
}

func (r *mysqlRepository) Clear(ctx context.Context, userID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = ?`, r.table)

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to clear %s: %w", r.table, err)
	}
	return nil
}
