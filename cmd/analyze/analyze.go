// Package analyze scores one or more OCR'd statements as a single batch
package analyze

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"fjacquet/statement-risk/cmd/common"
	"fjacquet/statement-risk/cmd/root"
	"fjacquet/statement-risk/internal/container"
	"fjacquet/statement-risk/internal/fileutils"
	"fjacquet/statement-risk/internal/logging"
	"fjacquet/statement-risk/internal/report"

	"github.com/spf13/cobra"
)

var (
	seriesCSV       string
	transactionsCSV string
	noSave          bool
)

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze [files or directories...]",
	Short: "Analyze statements and produce a risk report",
	Long: `Analyze OCR'd bank statements and produce a risk report.

All inputs are merged into one batch: transactions from every document are
analyzed together, so the score reflects the whole period. Directories are
scanned for the configured extensions; .csv files written by "extract" are
read as already extracted transactions.

Example:
  statement-risk analyze june.md july.md -f text
  statement-risk analyze -i statements/ -o report.json --series-csv series.csv`,
	Run: analyzeFunc,
}

func init() {
	Cmd.Flags().StringVar(&seriesCSV, "series-csv", "", "Also write the monthly inflow/outflow series to this CSV file")
	Cmd.Flags().StringVar(&transactionsCSV, "transactions-csv", "", "Also write the merged, date-sorted transactions to this CSV file")
	Cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not store the report in history even when history is enabled")
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	inputs := args
	if root.SharedFlags.Input != "" {
		inputs = append([]string{root.SharedFlags.Input}, inputs...)
	}

	out, err := run(cmd.Context(), appContainer, inputs, root.ReportFormat(), logger)
	if err != nil {
		logger.Fatalf("Analysis failed: %v", err)
	}
	if err := common.WriteOutput(out, root.SharedFlags.Output, os.Stdout); err != nil {
		logger.Fatalf("Failed to write report: %v", err)
	}
}

func run(ctx context.Context, c *container.Container, inputs []string, format string, logger logging.Logger) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	rep, err := common.AnalyzeInputs(ctx, c.GetProcessor(), inputs, c.GetConfig().Extraction.Extensions)
	if err != nil {
		return nil, err
	}

	out, err := c.GetReportGenerator().GenerateReport(rep, format)
	if err != nil {
		return nil, err
	}

	if seriesCSV != "" {
		var buf bytes.Buffer
		if err := report.WriteSeriesCSV(rep.GraphData, &buf); err != nil {
			return nil, fmt.Errorf("failed to render series CSV: %w", err)
		}
		if err := fileutils.WriteFile(seriesCSV, buf.Bytes(), 0600); err != nil {
			return nil, err
		}
	}

	if transactionsCSV != "" {
		var buf bytes.Buffer
		if err := report.WriteTransactionsCSV(rep.Transactions, &buf); err != nil {
			return nil, fmt.Errorf("failed to render transactions CSV: %w", err)
		}
		if err := fileutils.WriteFile(transactionsCSV, buf.Bytes(), 0600); err != nil {
			return nil, err
		}
	}

	if !noSave {
		if _, _, err := common.SaveToHistory(c.GetHistory(), rep, logger); err != nil {
			return nil, err
		}
	}
	return out, nil
}
