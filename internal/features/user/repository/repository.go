package repository

import (
	"context"
	"errors"

	"sneakr-backend/internal/features/user/models"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

type UserRepository interface {
	Create(ctx context.Context, username, passwordHash, email string) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetRole(ctx context.Context, id int64) (string, error)
	List(ctx context.Context) ([]models.AdminListItem, error)
	UpdateRole(ctx context.Context, id int64, role string) error
	UpdateProfileImage(ctx context.Context, id int64, path string) error
	Delete(ctx context.Context, id int64) error
}
