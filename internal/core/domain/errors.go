package domain

import "errors"

// The error taxonomy is deliberately small. Lookup misses on orders, users and
// messages degrade to silent no-ops inside the store; only the cases below are
// ever reported to a caller.
var (
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrServiceNotFound    = errors.New("service not found")

	// Analysis errors never leave the analysis service; they are converted to
	// fixed user-facing strings there.
	ErrAnalysisNotConfigured = errors.New("analyst not configured")
	ErrAnalysisFailed        = errors.New("analysis failed")
)
