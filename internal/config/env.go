package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes environment variables that override config keys.
const EnvPrefix = "VERBS_"

// EnvKey returns the environment variable that overrides key,
// e.g. VERBS_LOG_LEVEL for log_level.
func EnvKey(key string) string {
	return EnvPrefix + strings.ToUpper(key)
}

// LoadEnv loads .env files into the process environment. Missing files are
// skipped and variables that are already set are left alone.
func LoadEnv(files ...string) error {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// ReadEnvFile returns the VERBS_ overrides declared in a .env file without
// touching the environment, keyed by config key.
func ReadEnvFile(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string)
	for name, value := range vars {
		if key, ok := strings.CutPrefix(name, EnvPrefix); ok && key != "" {
			out[strings.ToLower(key)] = value
		}
	}
	return out, nil
}

func lookupEnv(key string) (string, bool) {
	return os.LookupEnv(EnvKey(key))
}
