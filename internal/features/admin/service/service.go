package service

import (
	"context"
	"errors"

	"sneakr-backend/internal/features/user/models"
	"sneakr-backend/internal/features/user/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("invalid role")
)

type AdminService interface {
	ListUsers(ctx context.Context) ([]models.AdminListItem, error)
	UpdateRole(ctx context.Context, userID int64, role string) error
	DeleteUser(ctx context.Context, userID int64) error
}

type adminService struct {
	users repository.UserRepository
}

func NewAdminService(users repository.UserRepository) AdminService {
	return &adminService{users: users}
}

func (s *adminService) ListUsers(ctx context.Context) ([]models.AdminListItem, error) {
	return s.users.List(ctx)
}

func (s *adminService) UpdateRole(ctx context.Context, userID int64, role string) error {
	if role != models.RoleUser && role != models.RoleAdmin {
		return ErrInvalidRole
	}
	if err := s.users.UpdateRole(ctx, userID, role); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *adminService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
