// Package constants provides shared configuration values used across the
// logview application.
package constants

import "time"

// Configuration file defaults
const (
	// DefaultConfigFile is the default configuration filename
	DefaultConfigFile = "logview.yaml"

	// DefaultAPIHost is the default host for the API server
	DefaultAPIHost = "127.0.0.1"

	// DefaultAPIPort is the default port for the API server
	DefaultAPIPort = 5665
)

// Timeout and duration defaults
const (
	// DefaultSinceWindow is how far back a refresh fetches when no
	// window is configured
	DefaultSinceWindow = time.Hour

	// DefaultShutdownTimeout is the default timeout for graceful shutdown
	DefaultShutdownTimeout = 10 * time.Second
)

// Log source limits
const (
	// DefaultLogLimit is the default number of log entries returned by
	// the API when no limit is given
	DefaultLogLimit = 100

	// MaxLogEntries is the maximum number of entries that can be
	// requested through the API (memory exhaustion protection)
	MaxLogEntries = 10000

	// ScannerBufferSize is the initial buffer size for log line scanning
	ScannerBufferSize = 64 * 1024 // 64KB

	// ScannerMaxBufferSize is the maximum buffer size for log line scanning
	ScannerMaxBufferSize = 1024 * 1024 // 1MB
)
