package handlers

import (
	"net/http"

	"eduman-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SchoolHandler handles HTTP requests for schools and their classes
type SchoolHandler struct {
	schools service.SchoolServiceInterface
	classes service.ClassServiceInterface
}

// NewSchoolHandler creates a new school handler
func NewSchoolHandler(schools service.SchoolServiceInterface, classes service.ClassServiceInterface) *SchoolHandler {
	return &SchoolHandler{schools: schools, classes: classes}
}

// ListSchools handles GET /api/schools/institution/:institutionId
// @Summary List the schools of an institution
// @Tags schools
// @Produce json
// @Param institutionId path string true "Institution ID (UUID)"
// @Success 200 {array} models.School "Schools"
// @Failure 400 {object} ErrorResponse "Invalid institution ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/schools/institution/{institutionId} [get]
func (h *SchoolHandler) ListSchools(c *gin.Context) {
	institutionID, ok := parseUUIDParam(c, "institutionId")
	if !ok {
		return
	}

	schools, err := h.schools.ListByInstitution(c.Request.Context(), institutionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schools)
}

// GetSchool handles GET /api/schools/:id
// @Summary Get a school
// @Tags schools
// @Produce json
// @Param id path string true "School ID (UUID)"
// @Success 200 {object} models.School "School"
// @Failure 400 {object} ErrorResponse "Invalid school ID"
// @Failure 404 {object} ErrorResponse "School not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/schools/{id} [get]
func (h *SchoolHandler) GetSchool(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	school, err := h.schools.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, school)
}

// CreateSchool handles POST /api/schools
// @Summary Create a school
// @Tags schools
// @Accept json
// @Produce json
// @Param school body service.CreateSchoolRequest true "School data"
// @Success 200 {object} models.School "Created school"
// @Failure 400 {object} ErrorResponse "Invalid request or unknown institution"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/schools [post]
func (h *SchoolHandler) CreateSchool(c *gin.Context) {
	var req service.CreateSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	school, err := h.schools.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, school)
}

// UpdateSchool handles PUT /api/schools/:id
// @Summary Update a school
// @Tags schools
// @Accept json
// @Param id path string true "School ID (UUID)"
// @Param school body service.UpdateSchoolRequest true "School data"
// @Success 204 "Updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "School not found"
// @Security BearerAuth
// @Router /api/schools/{id} [put]
func (h *SchoolHandler) UpdateSchool(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	found, err := h.schools.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		respondNotFound(c, "school")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteSchool handles DELETE /api/schools/:id
// @Summary Delete a school and its classes
// @Tags schools
// @Param id path string true "School ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "School not found"
// @Security BearerAuth
// @Router /api/schools/{id} [delete]
func (h *SchoolHandler) DeleteSchool(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	found, err := h.schools.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		respondNotFound(c, "school")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListClasses handles GET /api/classes/school/:schoolId
// @Summary List the classes of a school
// @Tags classes
// @Produce json
// @Param schoolId path string true "School ID (UUID)"
// @Success 200 {array} models.Class "Classes"
// @Failure 400 {object} ErrorResponse "Invalid school ID"
// @Security BearerAuth
// @Router /api/classes/school/{schoolId} [get]
func (h *SchoolHandler) ListClasses(c *gin.Context) {
	schoolID, ok := parseUUIDParam(c, "schoolId")
	if !ok {
		return
	}

	classes, err := h.classes.ListBySchool(c.Request.Context(), schoolID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

// CreateClass handles POST /api/classes
// @Summary Create a class
// @Tags classes
// @Accept json
// @Produce json
// @Param class body service.CreateClassRequest true "Class data"
// @Success 200 {object} models.Class "Created class"
// @Failure 400 {object} ErrorResponse "Invalid request or unknown school"
// @Security BearerAuth
// @Router /api/classes [post]
func (h *SchoolHandler) CreateClass(c *gin.Context) {
	var req service.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	class, err := h.classes.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

// DeleteClass handles DELETE /api/classes/:id
// @Summary Delete a class
// @Tags classes
// @Param id path string true "Class ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Class not found"
// @Security BearerAuth
// @Router /api/classes/{id} [delete]
func (h *SchoolHandler) DeleteClass(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	found, err := h.classes.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		respondNotFound(c, "class")
		return
	}
	c.Status(http.StatusNoContent)
}
