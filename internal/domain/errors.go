package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDishNotFound is returned when no dish with the requested name exists in the catalog
	ErrDishNotFound = errors.New("dish not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrInvalidProfile is returned when biometric inputs fail validation
	ErrInvalidProfile = errors.New("invalid biometric profile")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrDatasetUnavailable is returned when the dish dataset cannot be read
	ErrDatasetUnavailable = errors.New("dish dataset unavailable")

	// ErrDatasetMalformed is returned when the dataset is not a JSON array of objects
	ErrDatasetMalformed = errors.New("dish dataset is malformed")

	// ErrMissingDishName is returned when a non-empty dataset has no dish_name field at all
	ErrMissingDishName = errors.New("dish dataset has no dish_name field")

	// ErrNoCalorieData is returned when a dish has no positive calorie count to chart
	ErrNoCalorieData = errors.New("no calorie data available for daily intake calculation")

	// ErrNonPositiveTarget is returned when the daily calorie target is zero or negative
	ErrNonPositiveTarget = errors.New("daily calorie target is not positive")
)

// ValidationError reports the first biometric field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is lets callers match any ValidationError against ErrInvalidProfile.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidProfile
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
