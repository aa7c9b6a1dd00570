package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"sneakr-backend/internal/features/catalog/models"
	"sneakr-backend/internal/features/catalog/repository"
)

const sneakerColumns = "id, name, brand, colorway, market_value, gender, image_original, image_thumbnail, release_date"

type mysqlRepository struct {
	db *sqlx.DB
}

func NewMySQLRepository(db *sqlx.DB) repository.CatalogRepository {
	return &mysqlRepository{db: db}
}

// whereClause builds the shared filter predicate. The listing and the
// count must use the exact same predicate or totalPages drifts from
// the returned page.
func whereClause(f models.Filters) (string, []interface{}) {
	conds := []string{}
	args := []interface{}{}

	if f.Brand != "" {
		conds = append(conds, "brand = ?")
		args = append(args, f.Brand)
	}
	if f.Gender != "" {
		conds = append(conds, "gender = ?")
		args = append(args, f.Gender)
	}
	if f.MinMarketValue != nil {
		conds = append(conds, "market_value >= ?")
		args = append(args, *f.MinMarketValue)
	}
	if f.MaxMarketValue != nil {
		conds = append(conds, "market_value <= ?")
		args = append(args, *f.MaxMarketValue)
	}
	if f.Character != "" {
		conds = append(conds, "name LIKE ?")
		args = append(args, "%"+f.Character+"%")
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *mysqlRepository) List(ctx context.Context, f models.Filters, limit, offset int) ([]models.Sneaker, error) {
	where, args := whereClause(f)
	query := fmt.Sprintf("SELECT %s FROM sneakers%s ORDER BY id LIMIT ? OFFSET ?", sneakerColumns, where)
	args = append(args, limit, offset)

	sneakers := []models.Sneaker{}
	if err := r.db.SelectContext(ctx, &sneakers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list sneakers: %w", err)
	}
	return sneakers, nil
}

func (r *mysqlRepository) ListAll(ctx context.Context, f models.Filters) ([]models.Sneaker, error) {
	where, args := whereClause(f)
	query := fmt.Sprintf("SELECT %s FROM sneakers%s ORDER BY id", sneakerColumns, where)

	sneakers := []models.Sneaker{}
	if err := r.db.SelectContext(ctx, &sneakers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search sneakers: %w", err)
	}
	return sneakers, nil
}

func (r *mysqlRepository) Count(ctx context.Context, f models.Filters) (int, error) {
	where, args := whereClause(f)
	query := "SELECT COUNT(*) FROM sneakers" + where

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count sneakers: %w", err)
	}
	return count, nil
}

func (r *mysqlRepository) GetByID(ctx context.Context, id int64) (*models.Sneaker, error) {
	query := fmt.Sprintf("SELECT %s FROM sneakers WHERE id = ?", sneakerColumns)

	var sneaker models.Sneaker
	if err := r.db.GetContext(ctx, &sneaker, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrSneakerNotFound
		}
		return nil, fmt.Errorf("failed to get sneaker: %w", err)
	}
	return &sneaker, nil
}
