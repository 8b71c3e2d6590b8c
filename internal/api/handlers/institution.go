package handlers

import (
	"net/http"

	"eduman-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InstitutionHandler handles HTTP requests for institutions
type InstitutionHandler struct {
	service service.InstitutionServiceInterface
}

// NewInstitutionHandler creates a new institution handler
func NewInstitutionHandler(service service.InstitutionServiceInterface) *InstitutionHandler {
	return &InstitutionHandler{service: service}
}

// ListInstitutions handles GET /api/institutions
// @Summary List institutions
// @Description List every institution ordered by name
// @Tags institutions
// @Produce json
// @Success 200 {array} models.Institution "Institutions"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/institutions [get]
func (h *InstitutionHandler) ListInstitutions(c *gin.Context) {
	institutions, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, institutions)
}

// GetInstitution handles GET /api/institutions/:id
// @Summary Get an institution
// @Tags institutions
// @Produce json
// @Param id path string true "Institution ID (UUID)"
// @Success 200 {object} models.Institution "Institution"
// @Failure 400 {object} ErrorResponse "Invalid institution ID"
// @Failure 404 {object} ErrorResponse "Institution not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/institutions/{id} [get]
func (h *InstitutionHandler) GetInstitution(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	institution, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, institution)
}

// CreateInstitution handles POST /api/institutions
// @Summary Create an institution
// @Description Create an institution; a tenant id is generated when omitted
// @Tags institutions
// @Accept json
// @Produce json
// @Param institution body service.CreateInstitutionRequest true "Institution data"
// @Success 200 {object} models.Institution "Created institution"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Tenant id already in use"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/institutions [post]
func (h *InstitutionHandler) CreateInstitution(c *gin.Context) {
	var req service.CreateInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	institution, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, institution)
}

// UpdateInstitution handles PUT /api/institutions/:id
// @Summary Update an institution
// @Description Overwrite name, address and type
// @Tags institutions
// @Accept json
// @Param id path string true "Institution ID (UUID)"
// @Param institution body service.UpdateInstitutionRequest true "Institution data"
// @Success 204 "Updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Institution not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/institutions/{id} [put]
func (h *InstitutionHandler) UpdateInstitution(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateInstitutionRequest
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
		respondNotFound(c, "institution")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteInstitution handles DELETE /api/institutions/:id
// @Summary Delete an institution
// @Description Delete an institution with its schools, classes and licenses
// @Tags institutions
// @Param id path string true "Institution ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid institution ID"
// @Failure 404 {object} ErrorResponse "Institution not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/institutions/{id} [delete]
func (h *InstitutionHandler) DeleteInstitution(c *gin.Context) {
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
		respondNotFound(c, "institution")
		return
	}
	c.Status(http.StatusNoContent)
}
