package main

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/statement-risk/cmd/analyze"
	"fjacquet/statement-risk/cmd/extract"
	"fjacquet/statement-risk/cmd/history"
	"fjacquet/statement-risk/cmd/root"
	"fjacquet/statement-risk/internal/config"
	"fjacquet/statement-risk/internal/logging"

	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load .env before anything reads the environment
	config.LoadEnv(logging.NewLogrusAdapterFromLogger(root.Log))

	// 2. Set the global log level before any logger is created
	configureLogLevelDirectly()

	// 3. Initialize root command flags
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(extract.Cmd)
	root.Cmd.AddCommand(analyze.Cmd)
	root.Cmd.AddCommand(history.Cmd)
}

// configureLogLevelDirectly sets the global log level for all logrus instances
// and returns the configured level
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
	root.Log.SetLevel(logLevel)

	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
