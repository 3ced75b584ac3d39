package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound = errors.New("resource not found")

	// Admin write errors
	ErrNotConfigured = errors.New("management credentials not configured")
	ErrDuplicateSlug = errors.New("slug already exists")

	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)
