// Package env reads environment variables with defaults, for the few spots
// that need a value before the full config is loaded.
package env

import "os"

// Get looks up key and returns fallback when the variable is unset or empty.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
