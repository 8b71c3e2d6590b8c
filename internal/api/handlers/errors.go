package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "eduman-backend/internal/errors"
	"eduman-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Error titles returned in the "title" field
const (
	TitleNotFound            = "NotFound"
	TitleValidationFailed    = "ValidationFailed"
	TitleConflict            = "Conflict"
	TitleUnauthorized        = "Unauthorized"
	TitleInternalServerError = "InternalServerError"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string      `json:"error" example:"institution not found"`
	Title   string      `json:"title" example:"NotFound"`
	Details interface{} `json:"details,omitempty"`
}

// licenseDenialStatus maps each guard reason to its HTTP status
var licenseDenialStatus = map[string]int{
	apperrors.ReasonNoActiveLicense:   http.StatusUnprocessableEntity,
	apperrors.ReasonLicenseExpired:    http.StatusForbidden,
	apperrors.ReasonUserLimitExceeded: http.StatusConflict,
}

// respondError classifies err and writes the matching status and body.
// Unclassified errors are logged and reported as 500 without their message.
func respondError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	var validationErr *apperrors.ValidationError

	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Title: TitleNotFound})
	case errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Title:   TitleValidationFailed,
			Details: describeValidation(validationErrs),
		})
	case errors.As(err, &validationErr):
		details := map[string]string{}
		if validationErr.Field != "" {
			details[validationErr.Field] = validationErr.Message
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Message, Title: TitleValidationFailed, Details: details})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Title: TitleConflict})
	default:
		if denied, ok := apperrors.AsLicenseDenied(err); ok {
			status, known := licenseDenialStatus[denied.Reason]
			if !known {
				status = http.StatusForbidden
			}
			c.JSON(status, ErrorResponse{Error: denied.Error(), Title: denied.Reason})
			return
		}

		logger.WithContext(c.Request.Context()).WithError(err).
			WithField("path", c.FullPath()).
			Error("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Title: TitleInternalServerError})
	}
}

// respondBadRequest reports a malformed request body, path or query value
func respondBadRequest(c *gin.Context, message string, err error) {
	resp := ErrorResponse{Error: message, Title: TitleValidationFailed}
	if err != nil {
		resp.Details = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}

// respondNotFound reports a missing entity named by kind
func respondNotFound(c *gin.Context, kind string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: kind + " not found", Title: TitleNotFound})
}

// describeValidation renders validator errors keyed by field
func describeValidation(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		field := lowerFirst(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = "is required"
		case "email":
			out[field] = "must be a valid email address"
		case "oneof":
			out[field] = fmt.Sprintf("must be one of: %s", fe.Param())
		case "max":
			out[field] = fmt.Sprintf("must be at most %s characters", fe.Param())
		case "min":
			out[field] = fmt.Sprintf("must be at least %s characters", fe.Param())
		case "gte":
			out[field] = fmt.Sprintf("must be greater than or equal to %s", fe.Param())
		default:
			out[field] = fmt.Sprintf("failed %s validation", fe.Tag())
		}
	}
	return out
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// parseUUIDParam reads a UUID path parameter, writing a 400 when malformed
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondBadRequest(c, fmt.Sprintf("invalid %s: invalid UUID format", name), nil)
		return uuid.Nil, false
	}
	return id, true
}
