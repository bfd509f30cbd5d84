package utils

import (
	"errors"
	"strings"
)

var (
	ErrUnauthorized       = errors.New("unauthorized: user id missing")
	ErrValidation         = errors.New("validation failed")
	ErrUpstream           = errors.New("AI provider request failed")
	ErrParse              = errors.New("AI provider returned invalid JSON")
	ErrPersistence        = errors.New("failed to save itinerary")
	ErrItineraryNotFound  = errors.New("itinerary not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
	ErrRateLimited        = errors.New("too many requests")
)

// ValidationError lists the input fields that were missing or unusable.
// errors.Is(err, ErrValidation) holds for every ValidationError.
type ValidationError struct {
	Fields []string
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	return "Required fields missing: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// GenerationError marks a failure anywhere in the generate pipeline while keeping the cause's kind.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string { return "itinerary generation failed: " + e.Err.Error() }

func (e *GenerationError) Unwrap() error { return e.Err }
