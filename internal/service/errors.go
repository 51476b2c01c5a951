// Package service provides business logic for contact submissions,
// admin authentication and the simulated city dashboard.
package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a request that is missing required input.
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized marks a missing or wrong bearer token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCredentials marks a failed login. It wraps ErrUnauthorized.
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	// ErrStorage marks a failed read or write against the database.
	ErrStorage = errors.New("storage error")
)
