// Package store persists analysis history and loads user-supplied keyword lists.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/statement-risk/internal/logging"
	"fjacquet/statement-risk/internal/models"

	"gopkg.in/yaml.v3"
)

// DefaultKeywordsFile is looked up when no explicit keywords file is configured.
const DefaultKeywordsFile = "keywords.yaml"

// KeywordStore loads red-flag and high-risk keyword overrides from YAML.
type KeywordStore struct {
	KeywordsFile string
	logger       logging.Logger
}

// NewKeywordStore creates a store reading keywordsFile.
func NewKeywordStore(keywordsFile string, logger logging.Logger) *KeywordStore {
	return &KeywordStore{
		KeywordsFile: keywordsFile,
		logger:       logging.OrDefault(logger),
	}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *KeywordStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "statement-risk", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadKeywords reads the keyword overrides. A missing file is not an error and
// yields an empty config.
func (s *KeywordStore) LoadKeywords() (models.KeywordConfig, error) {
	filename := s.KeywordsFile
	if filename == "" {
		filename = DefaultKeywordsFile
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		s.logger.Debug("Keywords file not found, using built-in keywords",
			logging.F(logging.FieldFile, filename))
		return models.KeywordConfig{}, nil
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- path comes from configuration
	if err != nil {
		return models.KeywordConfig{}, fmt.Errorf("error reading keywords file: %w", err)
	}

	var cfg models.KeywordConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return models.KeywordConfig{}, fmt.Errorf("error parsing keywords file %s: %w", filePath, err)
	}
	cfg.RedFlags = normalizeKeywords(cfg.RedFlags)
	cfg.HighRisk = normalizeKeywords(cfg.HighRisk)

	s.logger.Info("Loaded keyword overrides",
		logging.F(logging.FieldFile, filePath),
		logging.F("red_flags", len(cfg.RedFlags)),
		logging.F("high_risk", len(cfg.HighRisk)))
	return cfg, nil
}

func normalizeKeywords(keywords []string) []string {
	var out []string
	for _, k := range keywords {
		if k = strings.ToUpper(strings.TrimSpace(k)); k != "" {
			out = append(out, k)
		}
	}
	return out
}
