package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "expensify/internal/errors"
	"expensify/internal/logger"
	"expensify/internal/middleware"
	"expensify/internal/uuid"
)

// ErrorResponse documents the error envelope for swagger.
type ErrorResponse struct {
	Error struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Issues  []apperrors.FieldIssue `json:"issues,omitempty"`
	} `json:"error"`
}

// getPrincipalID extracts the authenticated principal ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getPrincipalID(c *gin.Context) (string, error) {
	principalID, exists := c.Get(middleware.PrincipalIDKey)
	if !exists {
		return "", apperrors.ErrUnauthorized
	}
	return principalID.(string), nil
}

// parseUUIDParam reads a path parameter and verifies it is a well-formed UUID.
func parseUUIDParam(c *gin.Context, param string) (string, error) {
	id := c.Param(param)
	if !uuid.IsValid(id) {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// bindingError converts a ShouldBind failure into an AppError. Validator
// failures become a VALIDATION_ERROR with one issue per violated field;
// malformed payloads become a plain INVALID_INPUT.
func bindingError(err error) *apperrors.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		issues := make([]apperrors.FieldIssue, 0, len(verrs))
		for _, fe := range verrs {
			issues = append(issues, apperrors.FieldIssue{
				Field:   fe.Field(),
				Message: "failed validation on '" + fe.Tag() + "'",
			})
		}
		return apperrors.NewValidation(issues)
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, message, and issues.
// Otherwise it logs the unexpected error and returns a generic internal
// server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{"error": appErr})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{"error": apperrors.ErrInternalServer})
}
