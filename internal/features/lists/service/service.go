package service

import (
	"context"
	"errors"

	"sneakr-backend/internal/features/lists/models"
	"sneakr-backend/internal/features/lists/repository"
)

var (
	ErrEntryNotFound  = errors.New("entry not found")
	ErrDuplicateEntry = errors.New("entry already exists")
)

type ListService interface {
	List(ctx context.Context, userID int64) ([]models.Entry, error)
	Add(ctx context.Context, userID, productID int64) (int64, error)
	Remove(ctx context.Context, entryID, userID int64) error
	Clear(ctx context.Context, userID int64) error
}

type listService struct {
	repo repository.ListRepository
}

func NewListService(repo repository.ListRepository) ListService {
	return &listService{repo: repo}
}

func (s *listService) List(ctx context.Context, userID int64) ([]models.Entry, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *listService) Add(ctx context.Context, userID, productID int64) (int64, error) {
	id, err := s.repo.Add(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return 0, ErrDuplicateEntry
		}
		return 0, err
	}
	return id, nil
}

func (s *listService) Remove(ctx context.Context, entryID, userID int64) error {
	err := s.repo.Remove(ctx, entryID, userID)
	if errors.Is(err, repository.ErrEntryNotFound) {
		return ErrEntryNotFound
	}
	return err
}

func (s *listService) Clear(ctx context.Context, userID int64) error {
	return s.repo.Clear(ctx, userID)
}
