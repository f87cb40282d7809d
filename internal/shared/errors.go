package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Authentication errors
	ErrAuthFailed       = fmt.Errorf("authentication failed")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrSessionExpired   = fmt.Errorf("session expired")
	ErrInvalidState     = fmt.Errorf("invalid oauth state")

	// API and persistence errors
	ErrAPIRequest       = fmt.Errorf("API request failed")
	ErrRepoNotFound     = fmt.Errorf("repository not found")
	ErrContactNotFound  = fmt.Errorf("contact not found")
	ErrDocumentNotFound = fmt.Errorf("document not found")
	ErrSessionNotFound  = fmt.Errorf("session not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
