package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"travelapp/internal/domain"
	"travelapp/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Report binding violations under their json field names.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// RespondError sends the standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, fields map[string]string) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if len(fields) > 0 {
		payload["fields"] = fields
	}
	c.JSON(status, payload)
}

// RespondDomainError maps the domain error taxonomy onto status codes.
// Validation messages reach the caller verbatim.
func RespondDomainError(c *gin.Context, err error) {
	var fieldErrs domain.FieldErrors
	if errors.As(err, &fieldErrs) {
		fields := map[string]string{}
		for _, fe := range fieldErrs {
			fields[fe.Field] = fe.Msg
		}
		RespondError(c, http.StatusBadRequest, "validation failed", fields)
		return
	}

	var ve domain.ValidationError
	if errors.As(err, &ve) {
		var fields map[string]string
		if ve.Field != "" {
			fields = map[string]string{ve.Field: ve.Msg}
		}
		RespondError(c, http.StatusBadRequest, ve.Error(), fields)
		return
	}

	switch {
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, err.Error(), nil)
	default:
		RespondError(c, http.StatusInternalServerError, "internal server error", nil)
	}
}

// BindJSONOrError binds the body, translating structural binding errors
// to per-field messages.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "request body is empty", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := map[string]string{}
			for _, fe := range verrs {
				fields[fe.Field()] = bindingMessage(fe)
			}
			RespondError(c, http.StatusBadRequest, "validation failed", fields)
			return false
		}
		RespondError(c, http.StatusBadRequest, "invalid request payload", nil)
		return false
	}
	return true
}

// IDParam parses the :id route parameter.
func IDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return id, true
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "oneof":
		return "Must be one of: " + fe.Param() + "."
	case "datetime":
		return "Date must use the YYYY-MM-DD format."
	case "gt":
		return "Must be greater than " + fe.Param() + "."
	case "email":
		return "Must be a valid email address."
	case "min":
		return "Must be at least " + fe.Param() + " characters."
	default:
		return "Invalid value."
	}
}
