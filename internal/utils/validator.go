// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var skuPattern = regexp.MustCompile(`^[A-Z]{3}-[A-Z0-9]{1,6}-\d+$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("sku_id", validateSKUID)
	validate.RegisterValidation("tag", validateTag)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSKUID(fl validator.FieldLevel) bool {
	return skuPattern.MatchString(fl.Field().String())
}

func validateTag(fl validator.FieldLevel) bool {
	tag := fl.Field().String()
	if len(tag) < 1 || len(tag) > 50 {
		return false
	}
	matched, _ := regexp.MatchString("^[a-z0-9-]+$", tag)
	return matched
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "sku_id":
		return "SKU must look like GEM-TENANT-00042"
	case "tag":
		return "Tags must be 1-50 lowercase letters, digits or hyphens"
	default:
		return e.Field() + " is invalid"
	}
}
