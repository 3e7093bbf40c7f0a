// Package timeouts provides centralized timeout values for handler operations.
//
// These timeouts are used with context.WithTimeout for database operations in
// HTTP handlers. Using centralized values ensures consistency and makes it
// easy to adjust timeouts across the application.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks and connectivity verification
//   - Short: simple single-document reads or writes
//   - Medium: list queries and multi-step operations
package timeouts

import (
	"os"
	"sync"
	"time"
)

// Default timeout values (used if none are configured).
const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
)

// mu protects the timeout values from concurrent access.
var mu sync.RWMutex

var (
	ping   = DefaultPing
	short  = DefaultShort
	medium = DefaultMedium
)

// Ping returns the timeout for health checks and connectivity verification.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for simple operations like single-document reads
// and writes. Examples: get by ID, lookup by email, role update.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the timeout for moderate operations like list queries.
// Examples: paginated lists, filtered searches, list-plus-count.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// ConfigureFromEnv reads timeout overrides from environment variables
// (TIMEOUT_PING, TIMEOUT_SHORT, TIMEOUT_MEDIUM, e.g. "2s" or "500ms").
// Unset or invalid values keep the defaults. Returns the number of timeouts
// configured from the environment.
func ConfigureFromEnv() int {
	mu.Lock()
	defer mu.Unlock()
	configured := 0

	for _, tv := range []struct {
		env string
		dst *time.Duration
	}{
		{"TIMEOUT_PING", &ping},
		{"TIMEOUT_SHORT", &short},
		{"TIMEOUT_MEDIUM", &medium},
	} {
		if v := os.Getenv(tv.env); v != "" {
			if d, err := time.ParseDuration(v); err == nil && d > 0 {
				*tv.dst = d
				configured++
			}
		}
	}

	return configured
}

// Reset restores all timeouts to their default values. Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	short = DefaultShort
	medium = DefaultMedium
}
