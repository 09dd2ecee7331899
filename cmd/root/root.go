// Package root contains the root command for the application
package root

import (
	"fjacquet/statement-risk/internal/config"
	"fjacquet/statement-risk/internal/container"
	"fjacquet/statement-risk/internal/currencyutils"
	"fjacquet/statement-risk/internal/fileutils"
	"fjacquet/statement-risk/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Format string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// AppConfig is the configuration loaded before any subcommand runs.
	AppConfig *config.Config

	appContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "statement-risk",
		Short: "A CLI tool to extract transactions from OCR'd bank statements and score their risk.",
		Long: `statement-risk is a CLI tool that reads the pipe tables of OCR'd bank statements,
recovers the transactions they contain, and produces a 0-100 credit risk score
with cash flow insights, a monthly series and red flags.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to statement-risk!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			AppConfig = cfg

			Log = config.ConfigureLoggingFromConfig(cfg)
			fileutils.SetLogger(Log)
			currencyutils.SetLogger(Log)

			c, err := container.NewContainer(cfg, container.WithLogger(logging.NewLogrusAdapterFromLogger(Log)))
			if err != nil {
				Log.Fatalf("Failed to initialize application: %v", err)
			}
			appContainer = c
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appContainer == nil {
				return
			}
			if err := appContainer.Close(); err != nil {
				Log.Warnf("Failed to close resources: %v", err)
			}
		},
	}

	// SharedFlags holds the flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (stdout when empty)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Report format: json, yaml or text (defaults to report.format)")
}

// GetContainer returns the container built by PersistentPreRun, or nil before it ran.
func GetContainer() *container.Container {
	return appContainer
}

// GetLogrusAdapter wraps the shared logger in the logging.Logger interface.
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// ReportFormat returns the --format flag, falling back to the configured format.
func ReportFormat() string {
	if SharedFlags.Format != "" {
		return SharedFlags.Format
	}
	if AppConfig != nil {
		return AppConfig.Report.Format
	}
	return "json"
}
