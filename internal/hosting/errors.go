package hosting

import "errors"

var (
	ErrNotConfigured      = errors.New("hosting client not initialized")
	ErrRepositoryNotFound = errors.New("repository not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrRepositoryExists   = errors.New("repository already exists")
	ErrRequestFailed      = errors.New("hosting request failed")
)
