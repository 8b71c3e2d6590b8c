package handlers

import (
	"net/http"

	"eduman-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RoleHandler handles HTTP requests for roles and the permission catalogue
type RoleHandler struct {
	roles       service.RoleServiceInterface
	permissions service.PermissionServiceInterface
}

// NewRoleHandler creates a new role handler
func NewRoleHandler(roles service.RoleServiceInterface, permissions service.PermissionServiceInterface) *RoleHandler {
	return &RoleHandler{roles: roles, permissions: permissions}
}

// ListRoles handles GET /api/roles
// @Summary List roles
// @Tags roles
// @Produce json
// @Success 200 {array} models.Role "Roles"
// @Security BearerAuth
// @Router /api/roles [get]
func (h *RoleHandler) ListRoles(c *gin.Context) {
	roles, err := h.roles.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

// CreateRole handles POST /api/roles
// @Summary Create a role
// @Tags roles
// @Accept json
// @Produce json
// @Param role body service.CreateRoleRequest true "Role data"
// @Success 200 {object} models.Role "Created role"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Role name already in use"
// @Security BearerAuth
// @Router /api/roles [post]
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req service.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	role, err := h.roles.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

// UpdateRole handles PUT /api/roles/:id
// @Summary Update a role
// @Tags roles
// @Accept json
// @Param id path string true "Role ID (UUID)"
// @Param role body service.UpdateRoleRequest true "Role data"
// @Success 204 "Updated"
// @Failure 404 {object} ErrorResponse "Role not found"
// @Failure 409 {object} ErrorResponse "Role name already in use"
// @Security BearerAuth
// @Router /api/roles/{id} [put]
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	found, err := h.roles.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		respondNotFound(c, "role")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteRole handles DELETE /api/roles/:id
// @Summary Delete a role
// @Tags roles
// @Param id path string true "Role ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Role not found"
// @Security BearerAuth
// @Router /api/roles/{id} [delete]
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	found, err := h.roles.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		respondNotFound(c, "role")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetRolePermissions handles GET /api/roles/:id/permissions
// @Summary List the permission names of a role
// @Tags roles
// @Produce json
// @Param id path string true "Role ID (UUID)"
// @Success 200 {array} string "Permission names, sorted"
// @Failure 404 {object} ErrorResponse "Role not found"
// @Security BearerAuth
// @Router /api/roles/{id}/permissions [get]
func (h *RoleHandler) GetRolePermissions(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	names, err := h.roles.GetPermissions(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

// ReplaceRolePermissions handles PUT /api/roles/:id/permissions
// @Summary Replace the permission set of a role
// @Description Unknown permission names are ignored
// @Tags roles
// @Accept json
// @Param id path string true "Role ID (UUID)"
// @Param permissions body service.ReplacePermissionsRequest true "Complete permission set"
// @Success 204 "Replaced"
// @Failure 404 {object} ErrorResponse "Role not found"
// @Security BearerAuth
// @Router /api/roles/{id}/permissions [put]
func (h *RoleHandler) ReplaceRolePermissions(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.ReplacePermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	found, err := h.roles.ReplacePermissions(c.Request.Context(), id, req.Permissions)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		respondNotFound(c, "role")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPermissions handles GET /api/permissions
// @Summary List the permission catalogue
// @Tags permissions
// @Produce json
// @Success 200 {array} models.Permission "Permissions"
// @Security BearerAuth
// @Router /api/permissions [get]
func (h *RoleHandler) ListPermissions(c *gin.Context) {
	permissions, err := h.permissions.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, permissions)
}
