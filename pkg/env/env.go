// Package env reads process environment settings.
package env

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Get returns the trimmed value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if value, ok := Lookup(key); ok {
		return value
	}
	return fallback
}

// Lookup returns the trimmed value of key. Blank values count as unset.
func Lookup(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

// Duration parses key with time.ParseDuration, returning fallback when unset.
func Duration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := Lookup(key)
	if !ok {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q in %s: %w", value, key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid duration %q in %s: must be positive", value, key)
	}
	return d, nil
}
