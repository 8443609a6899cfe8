package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationErrorDetail represents the structure of a single validation error.
type ValidationErrorDetail struct {
	Field    string      `json:"field"`
	Message  string      `json:"message"`
	Expected string      `json:"expected"`
	Received interface{} `json:"received"`
}

// ValidationErrorData represents the data field in the validation error response.
type ValidationErrorData struct {
	Errors        []ValidationErrorDetail `json:"errors"`
	Documentation string                  `json:"documentation"`
}

const DocumentationLink = "/swagger/index.html"

// BindAndValidate binds the JSON body into obj and validates it.
// On failure it writes a 400 response listing every invalid field and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var validationErrors []ValidationErrorDetail
	var fieldErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &fieldErrs):
		for _, e := range fieldErrs {
			validationErrors = append(validationErrors, describeFieldError(obj, e))
		}
	case errors.As(err, &typeErr):
		validationErrors = append(validationErrors, ValidationErrorDetail{
			Field:    typeErr.Field,
			Message:  fmt.Sprintf("Field '%s' has invalid type", typeErr.Field),
			Expected: typeErr.Type.String(),
			Received: typeErr.Value,
		})
	default:
		validationErrors = append(validationErrors, ValidationErrorDetail{
			Field:    "body",
			Message:  "Malformed JSON or invalid request body",
			Expected: "valid JSON",
			Received: "invalid",
		})
	}

	c.JSON(http.StatusBadRequest, NewResponse(http.StatusBadRequest, "Invalid request parameters", ValidationErrorData{
		Errors:        validationErrors,
		Documentation: DocumentationLink,
	}))
	return false
}

func describeFieldError(obj interface{}, e validator.FieldError) ValidationErrorDetail {
	field := getJSONTagName(obj, e.StructField())

	detail := ValidationErrorDetail{
		Field:    field,
		Message:  fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", field, e.Tag()),
		Expected: e.Param(),
		Received: e.Value(),
	}
	if detail.Expected == "" {
		detail.Expected = e.Tag()
	}

	switch e.Tag() {
	case "required":
		detail.Message = fmt.Sprintf("Field '%s' is required", field)
		detail.Expected = "not null"
	case "min":
		detail.Message = fmt.Sprintf("Field '%s' must be at least %s characters long", field, e.Param())
		detail.Expected = fmt.Sprintf("min length %s", e.Param())
	case "max":
		detail.Message = fmt.Sprintf("Field '%s' must be at most %s characters long", field, e.Param())
		detail.Expected = fmt.Sprintf("max length %s", e.Param())
	}

	return detail
}

func getJSONTagName(obj interface{}, fieldName string) string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return fieldName
	}
	if f, ok := t.FieldByName(fieldName); ok {
		if tag := f.Tag.Get("json"); tag != "" && tag != "-" {
			if name, _, _ := strings.Cut(tag, ","); name != "" {
				return name
			}
		}
	}
	return fieldName
}
