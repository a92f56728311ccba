package config

import "os"

// Environment variables consulted by the CLI when the matching flag is unset.
const (
	EnvFPS        = "VEGGIEJUMP_FPS"
	EnvSeed       = "VEGGIEJUMP_SEED"
	EnvDifficulty = "VEGGIEJUMP_DIFFICULTY"
	EnvConfig     = "VEGGIEJUMP_CONFIG"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
