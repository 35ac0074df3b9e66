package app

import "fmt"

const recoverySuggestion = "Please check your connection and try again."

// AppError is the error shown to the user when a screen fails to load its data.
type AppError struct {
	Message string
}

func newLoadError(resource string, err error) *AppError {
	return &AppError{
		Message: fmt.Sprintf("Failed to load %s: %v", resource, err),
	}
}

// Error implements error interface
func (e *AppError) Error() string {
	return e.Message
}

// RecoverySuggestion returns text suggesting how the user can recover.
func (e *AppError) RecoverySuggestion() string {
	return recoverySuggestion
}
