package model

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Client input errors
	ErrInvalidPerson   = errors.New("person is invalid")
	ErrEmptySearchTerm = errors.New("search term is required")

	// ErrNicknameTaken belongs to the ErrInvalidPerson class so a storage
	// conflict surfaces exactly like a validation failure.
	ErrNicknameTaken = fmt.Errorf("%w: nickname already taken", ErrInvalidPerson)

	// Lookup errors
	ErrPersonNotFound = errors.New("person not found")

	// Storage errors (connectivity, timeout, schema mismatch)
	ErrStorage = errors.New("person storage failure")

	// Programming errors, e.g. inserting a record without an assigned id
	ErrInvariantViolation = errors.New("person invariant violated")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidPerson):
		return "INVALID_PERSON"
	case errors.Is(err, ErrEmptySearchTerm):
		return "SEARCH_TERM_REQUIRED"
	case errors.Is(err, ErrPersonNotFound):
		return "PERSON_NOT_FOUND"
	case errors.Is(err, ErrStorage):
		return "STORAGE_UNAVAILABLE"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidPerson):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrEmptySearchTerm):
		return http.StatusBadRequest
	case errors.Is(err, ErrPersonNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ToErrorMessage returns the message exposed to API clients.
// Validation details and storage internals are never exposed.
func ToErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidPerson):
		return ErrInvalidPerson.Error()
	case errors.Is(err, ErrEmptySearchTerm):
		return ErrEmptySearchTerm.Error()
	case errors.Is(err, ErrPersonNotFound):
		return ErrPersonNotFound.Error()
	default:
		return "internal server error"
	}
}
