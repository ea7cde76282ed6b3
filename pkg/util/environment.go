package util

import (
	"os"
	"strings"
	"time"
)

func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		pair := strings.SplitN(variable, "=", 2)

		environmentVariables[pair[0]] = pair[1]
	}

	return environmentVariables
}

// GetEnvironmentDuration reads a Go duration from the environment, returning
// fallback when the variable is unset or invalid.
func GetEnvironmentDuration(name string, fallback time.Duration) time.Duration {
	value := GetEnvironmentVariables()[name]
	if value == "" {
		return fallback
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}

	return duration
}
