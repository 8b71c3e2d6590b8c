package auth

import (
	"errors"
	"net/http"
	"strings"

	apperrors "eduman-backend/internal/errors"
	"eduman-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// Register handles POST /api/auth/register
// @Summary Register a new account
// @Description Create an active user without an institution. Every rejected rule is listed in details.
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} RegisterResponse "Account created"
// @Failure 400 {object} map[string]interface{} "RegistrationFailed"
// @Failure 429 {object} map[string]interface{} "Too many requests"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "title": "RegistrationFailed", "details": err.Error()})
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		var regErr *RegistrationError
		if errors.As(err, &regErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "registration failed", "title": "RegistrationFailed", "details": regErr.Error()})
			return
		}
		logger.WithContext(c.Request.Context()).WithError(err).Error("registration failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "title": "InternalServerError"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Login handles POST /api/auth/login
// @Summary Sign in
// @Description Exchange email and password for a bearer access token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} TokenResponse "Access token"
// @Failure 401 {object} map[string]interface{} "InvalidCredentials"
// @Failure 429 {object} map[string]interface{} "Too many requests"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidCredentials.Error(), "title": "InvalidCredentials"})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "title": "InvalidCredentials"})
			return
		}
		logger.WithContext(c.Request.Context()).WithError(err).Error("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "title": "InternalServerError"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ValidateToken handles POST /api/auth/validate
// @Summary Validate JWT token
// @Description Validate JWT token and return token claims
// @Tags authentication
// @Produce json
// @Param Authorization header string true "Bearer token to validate" example("Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...")
// @Success 200 {object} AuthValidateResponse "Token is valid with claims"
// @Failure 401 {object} map[string]interface{} "Authorization header required or token invalid"
// @Router /api/auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required", "title": "Unauthorized"})
		return
	}

	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "title": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}
