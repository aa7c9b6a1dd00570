package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"sneakr-backend/internal/features/user/repository"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrNoProfileImage = errors.New("no profile image")
	ErrBadImageType   = errors.New("unsupported image type")
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type ProfileService interface {
	// UploadImage writes the file to disk first, then points the user
	// row at it. A crash between the two steps orphans the file; that
	// is accepted and not recovered.
	UploadImage(ctx context.Context, userID int64, filename string, src io.Reader) (string, error)
	// ImageURL returns the stored public path for a user's image.
	ImageURL(ctx context.Context, userID int64) (string, error)
}

type profileService struct {
	repo      repository.UserRepository
	uploadDir string
}

func NewProfileService(repo repository.UserRepository, uploadDir string) ProfileService {
	return &profileService{repo: repo, uploadDir: uploadDir}
}

func (s *profileService) UploadImage(ctx context.Context, userID int64, filename string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", ErrBadImageType
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := uuid.New().String() + ext
	path := filepath.Join(s.uploadDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close upload: %w", err)
	}

	publicPath := "/uploads/" + name
	if err := s.repo.UpdateProfileImage(ctx, userID, publicPath); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	return publicPath, nil
}

func (s *profileService) ImageURL(ctx context.Context, userID int64) (string, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	if user.ProfileImage == "" {
		return "", ErrNoProfileImage
	}
	return user.ProfileImage, nil
}
