package server

import "time"

const (
	readTimeout = 5 * time.Second
	idleTimeout = 60 * time.Second
	// writeSlack is added to the upstream timeout so a slow NBA host surfaces as a 503
	// body instead of a reset connection.
	writeSlack = 5 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// writeTimeoutFor bounds a gateway response by one upstream round trip.
func writeTimeoutFor(upstream time.Duration) time.Duration {
	if upstream <= 0 {
		upstream = 10 * time.Second
	}
	return upstream + writeSlack
}
