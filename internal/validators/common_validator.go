package validators

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validation functions
	validate.RegisterValidation("object_id", validateObjectID)
	validate.RegisterValidation("gender", validateGender)
	validate.RegisterValidation("gender_preference", validateGenderPreference)
	validate.RegisterValidation("fare_rate", validateFareRate)
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	m := make(map[string]string, len(v))
	for _, err := range v {
		m[err.Field] = err.Message
	}
	return m
}

func ValidateStruct(s interface{}) ValidationErrors {
	var errors ValidationErrors

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	for _, err := range err.(validator.ValidationErrors) {
		errors = append(errors, ValidationError{
			Field:   strings.ToLower(err.Field()),
			Tag:     err.Tag(),
			Message: messageForTag(err),
		})
	}

	return errors
}

func messageForTag(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", err.Param())
	case "object_id":
		return "Invalid identifier format"
	case "gender":
		return "Must be one of: male, female, other"
	case "gender_preference":
		return "Must be one of: male, female, all"
	case "fare_rate":
		return "Must be a non-negative decimal number"
	default:
		return fmt.Sprintf("Failed validation: %s", err.Tag())
	}
}

func validateObjectID(fl validator.FieldLevel) bool {
	_, err := primitive.ObjectIDFromHex(fl.Field().String())
	return err == nil
}

func validateGender(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "male", "female", "other":
		return true
	}
	return false
}

func validateGenderPreference(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "male", "female", "all":
		return true
	}
	return false
}

func validateFareRate(fl validator.FieldLevel) bool {
	rate, err := strconv.ParseFloat(fl.Field().String(), 64)
	return err == nil && rate >= 0
}
