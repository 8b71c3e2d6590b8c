package handlers

import (
	"net/http"

	"eduman-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LicenseHandler handles HTTP requests for licenses
type LicenseHandler struct {
	service service.LicenseServiceInterface
}

// NewLicenseHandler creates a new license handler
func NewLicenseHandler(service service.LicenseServiceInterface) *LicenseHandler {
	return &LicenseHandler{service: service}
}

// ListLicenses handles GET /api/licenses/institution/:institutionId
// @Summary List the licenses of an institution
// @Description Latest end date first
// @Tags licenses
// @Produce json
// @Param institutionId path string true "Institution ID (UUID)"
// @Success 200 {array} models.License "Licenses"
// @Failure 400 {object} ErrorResponse "Invalid institution ID"
// @Security BearerAuth
// @Router /api/licenses/institution/{institutionId} [get]
func (h *LicenseHandler) ListLicenses(c *gin.Context) {
	institutionID, ok := parseUUIDParam(c, "institutionId")
	if !ok {
		return
	}

	licenses, err := h.service.ListByInstitution(c.Request.Context(), institutionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, licenses)
}

// CreateLicense handles POST /api/licenses
// @Summary Create a license
// @Description The key is generated and the status derived when omitted
// @Tags licenses
// @Accept json
// @Produce json
// @Param license body service.CreateLicenseRequest true "License data"
// @Success 200 {object} models.License "Created license"
// @Failure 400 {object} ErrorResponse "Invalid request, date range or unknown institution"
// @Failure 409 {object} ErrorResponse "License key already in use"
// @Security BearerAuth
// @Router /api/licenses [post]
func (h *LicenseHandler) CreateLicense(c *gin.Context) {
	var req service.CreateLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	license, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, license)
}

// DeleteLicense handles DELETE /api/licenses/:id
// @Summary Delete a license
// @Tags licenses
// @Param id path string true "License ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "License not found"
// @Security BearerAuth
// @Router /api/licenses/{id} [delete]
func (h *LicenseHandler) DeleteLicense(c *gin.Context) {
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
		respondNotFound(c, "license")
		return
	}
	c.Status(http.StatusNoContent)
}
