package domain

import "errors"

// Domain errors
var (
	ErrSourceUnavailable = errors.New("log source unavailable")
	ErrExportFailed      = errors.New("export failed")
	ErrConfigNotFound    = errors.New("config file not found")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// Error codes for API responses
const (
	ErrCodeSourceUnavailable = "SOURCE_UNAVAILABLE"
	ErrCodeExportFailed      = "EXPORT_FAILED"
	ErrCodeInvalidConfig     = "INVALID_CONFIG"
)

// ErrorCode returns the API error code for a domain error
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrSourceUnavailable):
		return ErrCodeSourceUnavailable
	case errors.Is(err, ErrExportFailed):
		return ErrCodeExportFailed
	case errors.Is(err, ErrInvalidConfig):
		return ErrCodeInvalidConfig
	default:
		return "INTERNAL_ERROR"
	}
}
