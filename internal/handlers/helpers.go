package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"vango/internal/utils"
	"vango/internal/validators"
)

// respondServiceError translates a service error into the API envelope,
// unpacking field-level validation errors when present.
func respondServiceError(c *gin.Context, err error) bool {
	var verrs validators.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for _, ve := range verrs {
			details[ve.Field] = ve.Message
		}
		utils.ValidationErrorResponse(c, details)
		return true
	}

	return false
}
