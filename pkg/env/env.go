package env

import "os"

// Get reads an environment variable, returning the fallback when it is
// unset or blank.
func Get(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
