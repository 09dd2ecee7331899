// Package extract handles the single-document extraction command
package extract

import (
	"fjacquet/statement-risk/cmd/common"
	"fjacquet/statement-risk/cmd/root"
	"fjacquet/statement-risk/internal/container"
	"fjacquet/statement-risk/internal/factory"
	"fjacquet/statement-risk/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the extract command
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract transactions from an OCR'd statement to CSV",
	Long: `Extract the transactions held in the pipe tables of an OCR'd statement
and write them as CSV (Date, Description, Inflow, Outflow).

The resulting file can be passed to "analyze" later, alone or together with
other statements.

Example:
  statement-risk extract -i june.md -o june.csv`,
	Run: extractFunc,
}

func extractFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	if err := run(appContainer, root.SharedFlags.Input, root.SharedFlags.Output, logger); err != nil {
		logger.Fatalf("Extraction failed: %v", err)
	}
}

func run(c *container.Container, input, output string, logger logging.Logger) error {
	p, err := c.GetParser(factory.TypeForFile(input))
	if err != nil {
		return err
	}
	return common.ProcessFile(p, input, output, logger)
}
