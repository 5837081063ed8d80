package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jenidevops/studentdb/internal/app/models/dto"
	"github.com/jenidevops/studentdb/internal/pkg/apperrors"
	"github.com/jenidevops/studentdb/internal/pkg/logger"
)

// HandleAPIError maps application errors onto HTTP responses. Controllers
// delegate every service error here so status codes stay consistent across
// the whole surface.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Validation failed", err))

	case errors.Is(err, apperrors.ErrDuplicateKey):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Duplicate value for a unique field", err))

	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Student not found", nil))

	case errors.Is(err, apperrors.ErrBookNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Book not found", nil))

	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Resource not found", nil))

	case errors.Is(err, apperrors.ErrBookAlreadyBorrowed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Book is not available for borrowing", err))

	case errors.Is(err, apperrors.ErrBookNotBorrowed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Book is not currently borrowed", err))

	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Request conflicts with current state", err))

	case errors.Is(err, apperrors.ErrStoreUnavailable):
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Database unreachable", err))

	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
	}
}
