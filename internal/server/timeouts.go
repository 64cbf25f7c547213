package server

import "time"

const (
	readTimeout = 10 * time.Second
	idleTimeout = 60 * time.Second

	// The /mcp endpoint streams tool results, so the write deadline has to
	// cover a slow upstream statsapi call plus response streaming.
	writeTimeout = 2 * time.Minute
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
