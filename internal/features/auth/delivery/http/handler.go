package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sneakr-backend/internal/common/middleware"
	"sneakr-backend/internal/features/auth/service"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterRoutes mounts the auth endpoints. loginLimiter is optional
// (nil when Redis is not configured).
func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup, requireAuth, loginLimiter gin.HandlerFunc) {
	login := []gin.HandlerFunc{h.login}
	if loginLimiter != nil {
		login = append([]gin.HandlerFunc{loginLimiter}, login...)
	}

	r.POST("/register", h.register)
	r.POST("/login", login...)
	r.GET("/me", requireAuth, h.me)
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body credentialsRequest true "Credentials"
// @Success 201 {object} map[string]interface{} "userId and username"
// @Failure 400 {object} map[string]string "Missing username or password"
// @Failure 409 {object} map[string]string "Username already taken"
// @Router /register [post]
func (h *AuthHandler) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Username already taken"})
			return
		}
		log.Error().Err(err).Str("username", req.Username).Msg("register failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"userId": user.ID, "username": user.Username})
}

// @Summary Log in and receive a token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body credentialsRequest true "Credentials"
// @Success 200 {object} service.LoginResult
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /login [post]
func (h *AuthHandler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	res, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		log.Error().Err(err).Str("username", req.Username).Msg("login failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, res)
}

// @Summary Current identity
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]string "Account no longer exists"
// @Router /me [get]
func (h *AuthHandler) me(c *gin.Context) {
	claims := middleware.Identity(c)

	user, err := h.service.Me(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Error().Err(err).Int64("user_id", claims.UserID).Msg("me lookup failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, user)
}
