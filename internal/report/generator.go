// Package report renders analysis reports for people and for other tools.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"fjacquet/statement-risk/internal/common"
	"fjacquet/statement-risk/internal/currencyutils"
	"fjacquet/statement-risk/internal/logging"
	"fjacquet/statement-risk/internal/models"

	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// Formats lists the accepted values of GenerateReport's format argument.
var Formats = []string{FormatJSON, FormatYAML, FormatText}

// ReportGenerator renders a models.Report in various formats.
type ReportGenerator struct {
	logger logging.Logger
}

// NewReportGenerator creates a new instance of ReportGenerator.
func NewReportGenerator(logger logging.Logger) *ReportGenerator {
	return &ReportGenerator{
		logger: logging.OrDefault(logger).WithField(logging.FieldComponent, "ReportGenerator"),
	}
}

// GenerateReport renders report as json, yaml or text.
func (g *ReportGenerator) GenerateReport(report *models.Report, format string) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("cannot render nil report")
	}
	switch strings.ToLower(format) {
	case FormatJSON:
		return g.generateJSONReport(report)
	case FormatYAML:
		return g.generateYAMLReport(report)
	case FormatText:
		return []byte(g.generateTextReport(report)), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *ReportGenerator) generateJSONReport(report *models.Report) ([]byte, error) {
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return out, nil
}

func (g *ReportGenerator) generateYAMLReport(report *models.Report) ([]byte, error) {
	out, err := yaml.Marshal(report)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}

func (g *ReportGenerator) generateTextReport(report *models.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Entity:     %s\n", report.EntityName)
	fmt.Fprintf(&b, "Status:     %s\n", report.Status)
	if report.Message != "" {
		fmt.Fprintf(&b, "Message:    %s\n", report.Message)
	}
	fmt.Fprintf(&b, "Score:      %d (%s)\n", report.Summary.Score, report.Summary.RiskLevel)
	fmt.Fprintf(&b, "Inflow:     %s\n", currencyutils.FormatFloat(report.Summary.TotalInflow, ""))
	fmt.Fprintf(&b, "Outflow:    %s\n", currencyutils.FormatFloat(report.Summary.TotalOutflow, ""))

	if len(report.GraphData) > 0 {
		b.WriteString("\nMonthly cash flow\n")
		tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "Month\tInflow\tOutflow\t")
		for _, p := range report.GraphData {
			fmt.Fprintf(tw, "%s\t%s\t%s\t\n", p.Month,
				currencyutils.FormatFloat(p.Inflow, ""),
				currencyutils.FormatFloat(p.Outflow, ""))
		}
		_ = tw.Flush()
	}

	if len(report.TopPayers) > 0 {
		b.WriteString("\nTop payers\n")
		for i, p := range report.TopPayers {
			fmt.Fprintf(&b, "  %d. %s  %s  (%.1f%%)\n", i+1, p.Name, currencyutils.FormatFloat(p.Amount, ""), p.Percentage)
		}
	}

	if len(report.Insights) > 0 {
		b.WriteString("\nInsights\n")
		for _, i := range report.Insights {
			fmt.Fprintf(&b, "  [%s] %s: %s\n", i.Type, i.Title, i.Text)
		}
	}

	if len(report.RedFlags) > 0 {
		b.WriteString("\nRed flags\n")
		for _, f := range report.RedFlags {
			fmt.Fprintf(&b, "  - %s\n", f)
		}
	}

	if len(report.Adjustments) > 0 {
		b.WriteString("\nScore breakdown\n")
		for _, a := range report.Adjustments {
			fmt.Fprintf(&b, "  %-20s %+d\n", a.Factor, a.Points)
		}
	}

	return b.String()
}

// WriteSeriesCSV writes the monthly graph data as CSV.
func WriteSeriesCSV(points []models.GraphPoint, w io.Writer) error {
	return common.WriteCSV(points, w)
}

// WriteTransactionsCSV writes transactions as CSV.
func WriteTransactionsCSV(transactions []models.RawTransaction, w io.Writer) error {
	return common.WriteCSV(transactions, w)
}
