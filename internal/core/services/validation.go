package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/technicaltest/vehicle-inventory-service/internal/core/domain"

	"github.com/go-playground/validator/v10"
)

// Field constraints mirrored from the database schema. The accented
// vowels keep Latin brand and model names valid.
var (
	inventoryNameRegexp = regexp.MustCompile(`^[a-zA-Z0-9áéíóúÁÉÍÓÚ ]*$`)
	colorNameRegexp     = regexp.MustCompile(`^[a-zA-Z ]*$`)
	licensePlateRegexp  = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*$`)
	vehicleYearRegexp   = regexp.MustCompile(`^(19|20)\d{2}$`)
)

// NewValidator builds the validator instance shared by every service,
// with the inventory-specific tags registered.
func NewValidator() (*validator.Validate, error) {
	validate := validator.New()

	patterns := map[string]*regexp.Regexp{
		"inventoryname": inventoryNameRegexp,
		"colorname":     colorNameRegexp,
		"licenseplate":  licensePlateRegexp,
		"vehicleyear":   vehicleYearRegexp,
	}

	for tag, pattern := range patterns {
		pattern := pattern
		err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return pattern.MatchString(fl.Field().String())
		})
		if err != nil {
			return nil, fmt.Errorf("failed to register %q validation: %w", tag, err)
		}
	}

	return validate, nil
}

// validationError flattens validator failures into a single message
// listing the offending fields.
func validationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		parts := make([]string, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			parts = append(parts, fmt.Sprintf("%s: failed on %s", fe.Field(), fe.Tag()))
		}
		return domain.ValidationFailed(strings.Join(parts, ", "))
	}
	return domain.ValidationFailed(err.Error())
}
