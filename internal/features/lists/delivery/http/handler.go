package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sneakr-backend/internal/common/middleware"
	"sneakr-backend/internal/features/lists/service"
)

// ListHandler serves one list surface (wishlist or collection); the
// path prefix and the backing table are decided at wiring time.
type ListHandler struct {
	service service.ListService
	name    string
}

func NewListHandler(service service.ListService, name string) *ListHandler {
	return &ListHandler{service: service, name: name}
}

// RegisterRoutes mounts the four list endpoints under /<name>. All of
// them require a token.
func (h *ListHandler) RegisterRoutes(r *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	g := r.Group("/"+h.name, requireAuth)
	{
		g.GET("", h.list)
		g.POST("", h.add)
		g.DELETE("/:id", h.remove)
		g.DELETE("", h.clear)
	}
}

type addRequest struct {
	ProductID int64 `json:"productId"`
}

// @Summary List saved items
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Entry
// @Router /wishlist [get]
func (h *ListHandler) list(c *gin.Context) {
	claims := middleware.Identity(c)

	entries, err := h.service.List(c.Request.Context(), claims.UserID)
	if err != nil {
		log.Error().Err(err).Str("list", h.name).Int64("user_id", claims.UserID).Msg("list failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// @Summary Save an item
// @Tags lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body addRequest true "Product to save"
// @Success 201 {object} map[string]int64 "New entry id"
// @Failure 400 {object} map[string]string "productId missing"
// @Failure 409 {object} map[string]string "Already saved"
// @Router /wishlist [post]
func (h *ListHandler) add(c *gin.Context) {
	claims := middleware.Identity(c)

	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
		return
	}

	id, err := h.service.Add(c.Request.Context(), claims.UserID, req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEntry) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Item already saved"})
			return
		}
		log.Error().Err(err).Str("list", h.name).Int64("user_id", claims.UserID).Msg("add failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary Remove one saved item
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string "Unknown entry"
// @Router /wishlist/{id} [delete]
func (h *ListHandler) remove(c *gin.Context) {
	claims := middleware.Identity(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID"})
		return
	}

	if err := h.service.Remove(c.Request.Context(), id, claims.UserID); err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		log.Error().Err(err).Str("list", h.name).Int64("entry_id", id).Msg("remove failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// @Summary Clear all saved items
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]bool
// @Router /wishlist [delete]
func (h *ListHandler) clear(c *gin.Context) {
	claims := middleware.Identity(c)

	if err := h.service.Clear(c.Request.Context(), claims.UserID); err != nil {
		log.Error().Err(err).Str("list", h.name).Int64("user_id", claims.UserID).Msg("clear failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
