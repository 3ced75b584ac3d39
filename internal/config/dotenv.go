package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads .env files for local development, .env.local before
// .env. godotenv.Load never overwrites already-set variables, so OS env
// always wins. Returns the files actually loaded.
func LoadDotEnv() []string {
	candidates := []string{".env.local", ".env"}
	var loaded []string
	for _, f := range candidates {
		if _, err := os.Stat(f); err == nil {
			loaded = append(loaded, f)
		}
	}
	if len(loaded) > 0 {
		_ = godotenv.Load(loaded...)
	}
	return loaded
}
