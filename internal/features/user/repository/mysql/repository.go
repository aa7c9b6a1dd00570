package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"sneakr-backend/internal/features/user/models"
	"sneakr-backend/internal/features/user/repository"
)

// MySQL duplicate-key error number.
const errDupEntry = 1062

type mysqlRepository struct {
	db *sqlx.DB
}

func NewMySQLRepository(db *sqlx.DB) repository.UserRepository {
	return &mysqlRepository{db: db}
}

func (r *mysqlRepository) Create(ctx context.Context, username, passwordHash, email string) (int64, error) {
	query := `INSERT INTO users (username, password_hash, role, email) VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, username, passwordHash, models.RoleUser, email)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == errDupEntry {
			return 0, repository.ErrUsernameTaken
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read insert id: %w", err)
	}
	return id, nil
}

func (r *mysqlRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, role, email, profile_image, created_at
		FROM users
		WHERE username = ?
	`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &user, nil
}

func (r *mysqlRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, role, email, profile_image, created_at
		FROM users
		WHERE id = ?
	`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *mysqlRepository) GetRole(ctx context.Context, id int64) (string, error) {
	query := `SELECT role FROM users WHERE id = ?`

	var role string
	if err := r.db.GetContext(ctx, &role, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", repository.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to get role: %w", err)
	}
	return role, nil
}

func (r *mysqlRepository) List(ctx context.Context) ([]models.AdminListItem, error) {
	query := `SELECT id, username, role FROM users ORDER BY id`

	users := []models.AdminListItem{}
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *mysqlRepository) UpdateRole(ctx context.Context, id int64, role string) error {
	query := `UPDATE users SET role = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, role, id)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	return requireRowAffected(res)
}

func (r *mysqlRepository) UpdateProfileImage(ctx context.Context, id int64, path string) error {
	query := `UPDATE users SET profile_image = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, path, id)
	if err != nil {
		return fmt.Errorf("failed to update profile image: %w", err)
	}
	return requireRowAffected(res)
}

func (r *mysqlRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return requireRowAffected(res)
}

func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}
