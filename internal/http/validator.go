package http

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// ageBuckets are the demographic buckets the provider accepts for
// signal.demographics.age.
var ageBuckets = map[string]bool{
	"24_and_younger": true,
	"25_to_29":       true,
	"30_to_34":       true,
	"35_to_44":       true,
	"45_to_54":       true,
	"55_and_older":   true,
}

func init() {
	validate = validator.New()

	validate.RegisterValidation("age_bucket", validateAgeBucket)
	validate.RegisterValidation("gender", validateGender)
	validate.RegisterValidation("entity_type", validateEntityType)
	validate.RegisterValidation("password_strength", validatePasswordStrength)
}

func validateAgeBucket(fl validator.FieldLevel) bool {
	return ageBuckets[fl.Field().String()]
}

func validateGender(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "male", "female":
		return true
	default:
		return false
	}
}

func validateEntityType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "book", "movie", "tv_show", "place":
		return true
	default:
		return false
	}
}

func validatePasswordStrength(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}

	hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
	hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)
	hasSpecial := regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`).MatchString(password)

	return hasUpper && hasLower && hasNumber && hasSpecial
}

func ValidateStruct(s interface{}) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errors []ErrorDetail
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, param)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "age_bucket":
			message = fmt.Sprintf("%s must be a recognized age bucket", field)
		case "gender":
			message = fmt.Sprintf("%s must be male or female", field)
		case "entity_type":
			message = fmt.Sprintf("%s must be one of book, movie, tv_show, place", field)
		case "password_strength":
			message = fmt.Sprintf("%s must be at least 8 characters with uppercase, lowercase, number, and special character", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		errors = append(errors, ErrorDetail{
			Field:   fieldName,
			Message: message,
		})
	}

	return errors
}
