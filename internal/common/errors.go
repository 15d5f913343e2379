// Package common defines shared constants and sentinel errors used across
// the layers of DataChart. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Auth errors (invalid, malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")

	// Ingestion errors.
	ErrorUnsupportedFileType = errors.New("unsupported file type")
	ErrorParse               = errors.New("parse error")

	// Query/aggregation errors.
	ErrorInvalidColumn      = errors.New("invalid column")
	ErrorNoNumericColumn    = errors.New("no numeric column")
	ErrorColumnNotNumeric   = errors.New("column is not numeric")
	ErrorInvalidAggregation = errors.New("invalid aggregation")

	// Download errors.
	ErrorNotArchived = errors.New("original file not archived")
)
