package config

import (
	"os"
	"path/filepath"
	"sync"

	"fjacquet/statement-risk/internal/logging"

	"github.com/joho/godotenv"
)

var (
	envOnce   sync.Once
	loadedEnv string

	// envFiles are tried in order; the first one present is loaded.
	envFiles = []string{".env", filepath.Join("..", ".env")}
)

// LoadEnv loads the first .env file found in the working directory or its
// parent. Variables already set in the process environment win. It runs once
// per process and returns the path it loaded, or "" when there was none.
func LoadEnv(logger logging.Logger) string {
	envOnce.Do(func() {
		loadedEnv = loadEnvFile(logging.OrDefault(logger), envFiles)
	})
	return loadedEnv
}

func loadEnvFile(logger logging.Logger, candidates []string) string {
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := godotenv.Load(candidate); err != nil {
			logger.WithError(err).Warn("Failed to load .env file", logging.F(logging.FieldFile, candidate))
			return ""
		}
		logger.Debug("Loaded environment variables", logging.F(logging.FieldFile, candidate))
		return candidate
	}
	logger.Debug("No .env file found, using process environment")
	return ""
}
