package validation

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AllowedProofExtensions are the image types accepted as payment proof.
var AllowedProofExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// MaxProofFileSize caps a single proof upload at 10MB.
const MaxProofFileSize = 10 * 1024 * 1024

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

// ValidateStruct validates a struct using struct tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationErrors converts validation errors to a user-friendly format
func FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			field := strings.ToLower(e.Field())
			switch e.Tag() {
			case "required":
				errors[field] = fmt.Sprintf("%s is required", e.Field())
			case "email":
				errors[field] = "Invalid email format"
			case "min":
				errors[field] = fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
			case "max":
				errors[field] = fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
			case "oneof":
				errors[field] = fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param())
			default:
				errors[field] = fmt.Sprintf("%s is invalid", e.Field())
			}
		}
	}

	return errors
}

// ValidateProofFilename checks the file extension against the proof
// whitelist. Returns a message suitable for a 400 body when invalid.
func ValidateProofFilename(filename string) (bool, string) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return false, "File has no extension; allowed types: jpg, jpeg, png, webp"
	}
	if !AllowedProofExtensions[ext] {
		return false, fmt.Sprintf("File type %s is not allowed; allowed types: jpg, jpeg, png, webp", ext)
	}
	return true, ""
}

// ValidateAmountText checks that a submitted amount parses as a
// non-negative number. Blank is allowed: the field is optional on a row.
func ValidateAmountText(raw string) (bool, string) {
	if raw == "" {
		return true, ""
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return false, fmt.Sprintf("%q is not a valid amount", raw)
	}
	if v < 0 {
		return false, "Amount must not be negative"
	}
	return true, ""
}

// ValidateUsername checks if a username is valid
func ValidateUsername(username string) (bool, string) {
	if len(username) < 3 {
		return false, "Username must be at least 3 characters"
	}
	if len(username) > 30 {
		return false, "Username must be at most 30 characters"
	}
	for _, char := range username {
		isAlnum := (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9')
		if !isAlnum && char != '_' && char != '-' && char != '.' {
			return false, "Username can only contain letters, numbers, underscores, hyphens, and dots"
		}
	}
	return true, ""
}

// SanitizeString removes potentially dangerous characters
func SanitizeString(s string) string {
	// Remove null bytes
	s = strings.ReplaceAll(s, "\x00", "")
	// Trim whitespace
	s = strings.TrimSpace(s)
	return s
}
