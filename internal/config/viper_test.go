package config

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/statement-risk/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.GreaterOrEqual(t, config.Extraction.Workers, 1)
	assert.LessOrEqual(t, config.Extraction.Workers, MaxWorkers)
	assert.Equal(t, []string{".md", ".txt"}, config.Extraction.Extensions)
	assert.Equal(t, "Unknown Company", config.Analysis.DefaultEntityName)
	assert.Equal(t, "", config.Analysis.KeywordsFile)
	assert.Equal(t, "json", config.Report.Format)
	assert.False(t, config.History.Enabled)
	assert.Equal(t, "statement-risk.db", config.History.Path)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	testEnvVars := map[string]string{
		"STMTRISK_LOG_LEVEL":                    "debug",
		"STMTRISK_LOG_FORMAT":                   "json",
		"STMTRISK_CSV_DELIMITER":                ";",
		"STMTRISK_EXTRACTION_WORKERS":           "3",
		"STMTRISK_EXTRACTION_EXTENSIONS":        ".md, .ocr",
		"STMTRISK_ANALYSIS_DEFAULT_ENTITY_NAME": "Acme",
		"STMTRISK_REPORT_FORMAT":                "yaml",
		"STMTRISK_HISTORY_ENABLED":              "true",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ";", config.CSV.Delimiter)
	assert.Equal(t, 3, config.Extraction.Workers)
	assert.Equal(t, []string{".md", ".ocr"}, config.Extraction.Extensions)
	assert.Equal(t, "Acme", config.Analysis.DefaultEntityName)
	assert.Equal(t, "yaml", config.Report.Format)
	assert.True(t, config.History.Enabled)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
  format: "json"
csv:
  delimiter: "|"
extraction:
  workers: 2
  extensions: [".txt"]
analysis:
  default_entity_name: "Borrower Ltd"
  keywords_file: "rules/keywords.yaml"
report:
  format: "text"
history:
  enabled: true
  path: "reports.db"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0600))
	chdir(t, tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "|", config.CSV.Delimiter)
	assert.Equal(t, 2, config.Extraction.Workers)
	assert.Equal(t, []string{".txt"}, config.Extraction.Extensions)
	assert.Equal(t, "Borrower Ltd", config.Analysis.DefaultEntityName)
	assert.Equal(t, "rules/keywords.yaml", config.Analysis.KeywordsFile)
	assert.Equal(t, "text", config.Report.Format)
	assert.True(t, config.History.Enabled)
	assert.Equal(t, "reports.db", config.History.Path)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configContent := `
log:
  level: "warn"
csv:
  delimiter: "|"
extraction:
  workers: 2
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0600))

	t.Setenv("STMTRISK_LOG_LEVEL", "error")
	t.Setenv("STMTRISK_EXTRACTION_WORKERS", "8")
	chdir(t, tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)    // env var wins
	assert.Equal(t, "|", config.CSV.Delimiter)    // config file value
	assert.Equal(t, 8, config.Extraction.Workers) // env var wins
}

func TestInitializeConfig_InvalidEnvFails(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())
	t.Setenv("STMTRISK_REPORT_FORMAT", "pdf")

	_, err := InitializeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid report format")
}

func validConfig() *Config {
	c := &Config{}
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.CSV.Delimiter = ","
	c.Extraction.Workers = 4
	c.Extraction.Extensions = []string{".md"}
	c.Report.Format = "json"
	c.History.Path = "statement-risk.db"
	return c
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name:         "invalid log level",
			modifyConfig: func(c *Config) { c.Log.Level = "invalid" },
			expectError:  "invalid log level",
		},
		{
			name:         "invalid log format",
			modifyConfig: func(c *Config) { c.Log.Format = "invalid" },
			expectError:  "invalid log format",
		},
		{
			name:         "invalid CSV delimiter",
			modifyConfig: func(c *Config) { c.CSV.Delimiter = "abc" },
			expectError:  "CSV delimiter must be a single character",
		},
		{
			name:         "zero workers",
			modifyConfig: func(c *Config) { c.Extraction.Workers = 0 },
			expectError:  "extraction.workers must be between 1 and 64",
		},
		{
			name:         "too many workers",
			modifyConfig: func(c *Config) { c.Extraction.Workers = 65 },
			expectError:  "extraction.workers must be between 1 and 64",
		},
		{
			name:         "no extensions",
			modifyConfig: func(c *Config) { c.Extraction.Extensions = nil },
			expectError:  "extraction.extensions must list at least one extension",
		},
		{
			name:         "unknown report format",
			modifyConfig: func(c *Config) { c.Report.Format = "pdf" },
			expectError:  "invalid report format",
		},
		{
			name: "history without path",
			modifyConfig: func(c *Config) {
				c.History.Enabled = true
				c.History.Path = " "
			},
			expectError: "history.path required when history is enabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}

	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, validateConfig(validConfig()))
	})
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{".md", ".txt"}, splitList([]string{".md,.txt"}))
	assert.Equal(t, []string{".md", ".txt"}, splitList([]string{" .md ", "", ".txt"}))
	assert.Empty(t, splitList(nil))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	tests := []struct {
		name          string
		level         string
		format        string
		expectLevel   logrus.Level
		expectJSONFmt bool
	}{
		{"text format info level", "info", "text", logrus.InfoLevel, false},
		{"json format debug level", "debug", "json", logrus.DebugLevel, true},
		{"bad level falls back to info", "loud", "text", logrus.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			config.Log.Level = tt.level
			config.Log.Format = tt.format

			logger := ConfigureLoggingFromConfig(config)
			require.NotNil(t, logger)
			assert.Equal(t, tt.expectLevel, logger.GetLevel())
			_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.expectJSONFmt, isJSON)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STMTRISK_DOTENV_VALUE", "")
	require.NoError(t, os.Unsetenv("STMTRISK_DOTENV_VALUE"))
	t.Setenv("STMTRISK_DOTENV_PRESET", "from-process")
	require.NoError(t, os.WriteFile(".env", []byte("STMTRISK_DOTENV_VALUE=from-file\nSTMTRISK_DOTENV_PRESET=from-file\n"), 0600))

	mock := logging.NewMockLogger()
	loaded := loadEnvFile(mock, []string{"missing.env", ".env"})

	assert.Equal(t, ".env", loaded)
	assert.Equal(t, "from-file", os.Getenv("STMTRISK_DOTENV_VALUE"))
	assert.Equal(t, "from-process", os.Getenv("STMTRISK_DOTENV_PRESET"))
	assert.True(t, mock.HasEntry("DEBUG", "Loaded environment variables"))
}

func TestLoadEnvFile_NoneFound(t *testing.T) {
	chdir(t, t.TempDir())
	mock := logging.NewMockLogger()

	assert.Equal(t, "", loadEnvFile(mock, []string{".env", "other.env"}))
	assert.True(t, mock.HasEntry("DEBUG", "No .env file found, using process environment"))
}

func TestLoadEnvFile_MalformedFileWarns(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("BAD-KEY=1\n"), 0600))
	mock := logging.NewMockLogger()

	assert.Equal(t, "", loadEnvFile(mock, []string{".env"}))
	assert.True(t, mock.HasEntry("WARN", "Failed to load .env file"))
}

// clearTestEnvVars blanks every override so the host environment cannot leak in.
func clearTestEnvVars(t *testing.T) {
	envVars := []string{
		"STMTRISK_LOG_LEVEL",
		"STMTRISK_LOG_FORMAT",
		"STMTRISK_CSV_DELIMITER",
		"STMTRISK_EXTRACTION_WORKERS",
		"STMTRISK_EXTRACTION_EXTENSIONS",
		"STMTRISK_ANALYSIS_DEFAULT_ENTITY_NAME",
		"STMTRISK_ANALYSIS_KEYWORDS_FILE",
		"STMTRISK_REPORT_FORMAT",
		"STMTRISK_HISTORY_ENABLED",
		"STMTRISK_HISTORY_PATH",
	}

	for _, envVar := range envVars {
		t.Setenv(envVar, "")
		require.NoError(t, os.Unsetenv(envVar))
	}
}
