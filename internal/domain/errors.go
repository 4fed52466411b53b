package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrCatalogUnreachable indicates the catalog API could not be reached
	ErrCatalogUnreachable = errors.New("catalog is unreachable")

	// ErrUpstream indicates the catalog API returned a non-success response
	ErrUpstream = errors.New("catalog returned an error response")

	// ErrBadPayload indicates the catalog response could not be decoded
	ErrBadPayload = errors.New("catalog response could not be decoded")

	// ErrInvalidCredentials indicates a failed login attempt
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAccountExists indicates a registration conflict
	ErrAccountExists = errors.New("account already exists")

	// ErrAccountNotFound indicates the requested account does not exist
	ErrAccountNotFound = errors.New("account not found")
)
