package application

import (
	"errors"

	"studytracker/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrCorruptStore = errors.New("corrupt session store")
)

// ValidationError re-exports the domain field error so adapters can match on
// it without importing the domain package directly.
type ValidationError = domain.FieldError
