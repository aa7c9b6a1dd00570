package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sneakr-backend/internal/common/middleware"
	"sneakr-backend/internal/features/notification/service"
)

type NotificationHandler struct {
	service service.NotificationService
}

func NewNotificationHandler(service service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	r.POST("/send-collection-email", requireAuth, h.sendCollectionEmail)
}

type sendRequest struct {
	Email string `json:"email"`
}

// @Summary Email the caller's collection
// @Tags notification
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body sendRequest true "Recipient address"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Email is required"
// @Failure 404 {object} map[string]string "Collection is empty"
// @Router /send-collection-email [post]
func (h *NotificationHandler) sendCollectionEmail(c *gin.Context) {
	claims := middleware.Identity(c)

	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	if err := h.service.SendCollectionEmail(c.Request.Context(), claims.UserID, req.Email); err != nil {
		if errors.Is(err, service.ErrEmptyCollection) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Collection is empty"})
			return
		}
		log.Error().Err(err).Int64("user_id", claims.UserID).Msg("collection mail failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
