package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sneakr-backend/internal/features/catalog/models"
	"sneakr-backend/internal/features/catalog/service"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(service service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/sneakers", h.listSneakers)
	r.GET("/sneakers/:id", h.getSneaker)
	r.GET("/search", h.searchSneakers)
}

// parseFilters reads the shared filter parameters. Unparseable numeric
// bounds are ignored rather than rejected.
func parseFilters(c *gin.Context) models.Filters {
	f := models.Filters{
		Brand:     c.Query("brand"),
		Gender:    c.Query("gender"),
		Character: c.Query("character"),
	}
	if v, err := strconv.ParseFloat(c.Query("minMarketValue"), 64); err == nil {
		f.MinMarketValue = &v
	}
	if v, err := strconv.ParseFloat(c.Query("maxMarketValue"), 64); err == nil {
		f.MaxMarketValue = &v
	}
	return f
}

// intQuery coerces a query parameter to an integer, falling back to a
// default when absent or non-numeric. Zero and negative values pass
// through untouched.
func intQuery(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return def
	}
	return v
}

// @Summary Paginated, filterable catalog listing
// @Tags catalog
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param brand query string false "Exact brand match"
// @Param gender query string false "Exact gender match"
// @Param minMarketValue query number false "Lower market value bound"
// @Param maxMarketValue query number false "Upper market value bound"
// @Param character query string false "Substring match on name"
// @Success 200 {object} models.Page
// @Router /sneakers [get]
func (h *CatalogHandler) listSneakers(c *gin.Context) {
	page := intQuery(c, "page", service.DefaultPage)
	limit := intQuery(c, "limit", service.DefaultLimit)

	result, err := h.service.ListSneakers(c.Request.Context(), page, limit, parseFilters(c))
	if err != nil {
		log.Error().Err(err).Msg("catalog listing failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Single catalog item
// @Tags catalog
// @Produce json
// @Param id path int true "Sneaker ID"
// @Success 200 {object} models.Sneaker
// @Failure 404 {object} map[string]string "Unknown sneaker"
// @Router /sneakers/{id} [get]
func (h *CatalogHandler) getSneaker(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid sneaker ID"})
		return
	}

	sneaker, err := h.service.GetSneaker(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSneakerNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Sneaker not found"})
			return
		}
		log.Error().Err(err).Int64("sneaker_id", id).Msg("sneaker lookup failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, sneaker)
}

// @Summary Unpaginated filtered search
// @Tags catalog
// @Produce json
// @Param brand query string false "Exact brand match"
// @Param gender query string false "Exact gender match"
// @Param minMarketValue query number false "Lower market value bound"
// @Param maxMarketValue query number false "Upper market value bound"
// @Param character query string false "Substring match on name"
// @Success 200 {object} map[string][]models.Sneaker
// @Router /search [get]
func (h *CatalogHandler) searchSneakers(c *gin.Context) {
	items, err := h.service.SearchSneakers(c.Request.Context(), parseFilters(c))
	if err != nil {
		log.Error().Err(err).Msg("catalog search failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
