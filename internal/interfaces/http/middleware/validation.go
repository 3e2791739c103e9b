package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopadmin/backend/internal/infrastructure/logger"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
)

// SetupValidator reports binding errors by wire name and registers the
// custom binding tags.
func SetupValidator() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
	}
	return dto.RegisterValidators()
}

// FormatValidationErrors converts a binding error into the error body.
// Errors that are not field validation failures (bad JSON, wrong types)
// yield no details.
func FormatValidationErrors(err error, requestID string) dto.ErrorResponse {
	resp := dto.NewErrorResponse(dto.ErrCodeValidation, "Request validation failed", requestID)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		resp.Code = dto.ErrCodeBadRequest
		resp.Error = "Malformed request"
		return resp
	}
	for _, e := range validationErrors {
		resp.Details = append(resp.Details, dto.ValidationDetail{
			Field:   e.Field(),
			Message: getValidationMessage(e),
		})
	}
	return resp
}

// HandleValidationError writes a 400 for a binding error, or a 413 when the
// body ran past the BodyLimit reader.
func HandleValidationError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		abortPayloadTooLarge(c)
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, FormatValidationErrors(err, c.GetString(logger.GinRequestIDKey)))
}

// getValidationMessage returns a human-readable validation message
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		if e.Type().Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "uuid":
		return "Invalid UUID format"
	case "oneof":
		return "Must be one of: " + e.Param()
	case "datetime":
		return "Must match the format " + e.Param()
	case "storagekey":
		return "Invalid storage key"
	default:
		return "Invalid value"
	}
}
