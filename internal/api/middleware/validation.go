package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/parnika15-9/meeting-summarizer/internal/api/errors"
)

// ValidateQuery binds and validates query parameters, translating binding
// failures into the shared error taxonomy.
func ValidateQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			fields := make([]string, 0, len(validationErrs))
			for _, fieldError := range validationErrs {
				fields = append(fields, strings.ToLower(fieldError.Field()))
			}
			return errors.NewBadRequestError("Invalid query parameters: " + strings.Join(fields, ", "))
		}
		return errors.NewBadRequestError("Invalid query parameters")
	}

	return nil
}
