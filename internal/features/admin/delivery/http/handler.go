package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sneakr-backend/internal/features/admin/service"
)

type AdminHandler struct {
	service service.AdminService
}

func NewAdminHandler(service service.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// RegisterRoutes mounts everything under /admin behind the auth and
// admin-role middleware.
func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup, requireAuth, requireAdmin gin.HandlerFunc) {
	admin := r.Group("/admin", requireAuth, requireAdmin)
	admin.GET("", h.probe)
	admin.GET("/users", h.listUsers)
	admin.PUT("/users/:id", h.updateRole)
	admin.DELETE("/users/:id", h.deleteUser)
}

// @Summary Admin access probe
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]bool
// @Failure 403 {object} map[string]string "Admin access required"
// @Router /admin [get]
func (h *AdminHandler) probe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// @Summary List all users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AdminListItem
// @Failure 403 {object} map[string]string "Admin access required"
// @Router /admin/users [get]
func (h *AdminHandler) listUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("user listing failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, users)
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

// @Summary Change a user's role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param body body updateRoleRequest true "New role"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Role must be user or admin"
// @Failure 404 {object} map[string]string "User not found"
// @Router /admin/users/{id} [put]
func (h *AdminHandler) updateRole(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Role == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Role is required"})
		return
	}

	if err := h.service.UpdateRole(c.Request.Context(), userID, req.Role); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Role must be user or admin"})
		case errors.Is(err, service.ErrUserNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			log.Error().Err(err).Int64("user_id", userID).Msg("role update failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// @Summary Delete a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string "User not found"
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) deleteUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Error().Err(err).Int64("user_id", userID).Msg("user delete failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
