package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sneakr-backend/internal/common/middleware"
	"sneakr-backend/internal/features/profile/service"
)

// Profile images above this size are rejected before touching disk.
const maxImageSize = 5 << 20

type ProfileHandler struct {
	service service.ProfileService
}

func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	r.POST("/upload-profile-image", requireAuth, h.upload)
	r.GET("/profile-image/:userId", h.getImage)
}

// @Summary Upload a profile image
// @Tags profile
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param profileImage formData file true "Image file"
// @Success 200 {object} map[string]string "Public image path"
// @Failure 400 {object} map[string]string "Missing or invalid file"
// @Router /upload-profile-image [post]
func (h *ProfileHandler) upload(c *gin.Context) {
	claims := middleware.Identity(c)

	header, err := c.FormFile("profileImage")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "profileImage file is required"})
		return
	}
	if header.Size > maxImageSize {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Image too large"})
		return
	}

	file, err := header.Open()
	if err != nil {
		log.Error().Err(err).Msg("failed to open upload")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	defer file.Close()

	path, err := h.service.UploadImage(c.Request.Context(), claims.UserID, header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadImageType):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Unsupported image type"})
		case errors.Is(err, service.ErrUserNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			log.Error().Err(err).Int64("user_id", claims.UserID).Msg("image upload failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"profileImage": path})
}

// @Summary Get a user's profile image path
// @Tags profile
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "No user or no image"
// @Router /profile-image/{userId} [get]
func (h *ProfileHandler) getImage(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	path, err := h.service.ImageURL(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrNoProfileImage):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Profile image not found"})
		default:
			log.Error().Err(err).Int64("user_id", userID).Msg("image lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"profileImage": path})
}
