package handlers

import (
	"net/http"
	"strings"

	"eduman-backend/internal/auth"
	"eduman-backend/internal/repository"
	"eduman-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	service service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// GetCurrentUser handles GET /api/users/me
// @Summary Get the signed-in user
// @Tags users
// @Produce json
// @Success 200 {object} models.User "Current user"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "User no longer exists"
// @Security BearerAuth
// @Router /api/users/me [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required", Title: TitleUnauthorized})
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers handles GET /api/users
// @Summary List users
// @Description Role and status match case-insensitively; q matches full name or email
// @Tags users
// @Produce json
// @Param institutionId query string false "Institution ID (UUID)"
// @Param role query string false "Role label"
// @Param status query string false "active or inactive"
// @Param q query string false "Free-text search"
// @Success 200 {array} models.User "Users"
// @Failure 400 {object} ErrorResponse "Invalid institution ID"
// @Security BearerAuth
// @Router /api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	filter := repository.UserFilter{
		Role:   c.Query("role"),
		Status: c.Query("status"),
		Query:  c.Query("q"),
	}
	if raw := strings.TrimSpace(c.Query("institutionId")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondBadRequest(c, "invalid institutionId: invalid UUID format", nil)
			return
		}
		filter.InstitutionID = &id
	}

	users, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /api/users?password=
// @Summary Create a user
// @Description Joining an institution requires its current license to have room for one more user
// @Tags users
// @Accept json
// @Produce json
// @Param password query string true "Initial password"
// @Param user body service.CreateUserRequest true "User data"
// @Success 200 {object} models.User "Created user"
// @Failure 400 {object} ErrorResponse "Invalid request or password policy violation"
// @Failure 403 {object} ErrorResponse "LicenseExpired"
// @Failure 409 {object} ErrorResponse "Email in use, or UserLimitExceeded"
// @Failure 422 {object} ErrorResponse "NoActiveLicense"
// @Security BearerAuth
// @Router /api/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	user, err := h.service.Create(c.Request.Context(), &req, c.Query("password"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /api/users/:id
// @Summary Update a user
// @Tags users
// @Accept json
// @Param id path string true "User ID (UUID)"
// @Param user body service.UpdateUserRequest true "User data"
// @Success 204 "Updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 409 {object} ErrorResponse "Email in use, or UserLimitExceeded"
// @Security BearerAuth
// @Router /api/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	found, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		respondNotFound(c, "user")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteUser handles DELETE /api/users/:id
// @Summary Delete a user
// @Tags users
// @Param id path string true "User ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /api/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	found, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		respondNotFound(c, "user")
		return
	}
	c.Status(http.StatusNoContent)
}
