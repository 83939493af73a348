package bigconfig

import (
	"os"
	"strconv"
)

// getEnvInt returns the value of the environment variable with the given
// key (prefixed with EnvPrefix) parsed as int, or defaultVal if unset or
// unparsable.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}
