// Package history exposes the stored analysis reports
package history

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"fjacquet/statement-risk/cmd/common"
	"fjacquet/statement-risk/cmd/root"
	"fjacquet/statement-risk/internal/report"
	"fjacquet/statement-risk/internal/store"

	"github.com/spf13/cobra"
)

// errDisabled is returned when a history command runs without a configured store.
var errDisabled = errors.New("history is disabled; set history.enabled or STMTRISK_HISTORY_ENABLED=true")

// Cmd represents the history command
var Cmd = &cobra.Command{
	Use:   "history",
	Short: "List, show or delete stored reports",
	Long: `Inspect reports saved by "analyze" when history is enabled.

Example:
  statement-risk history list
  statement-risk history show 3f1c... -f text
  statement-risk history delete 3f1c...`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored reports, newest first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := list(historyStore(), os.Stdout); err != nil {
			root.Log.Fatalf("Failed to list history: %v", err)
		}
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Render a stored report",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out, err := show(historyStore(), report.NewReportGenerator(root.GetLogrusAdapter()), args[0], root.ReportFormat())
		if err != nil {
			root.Log.Fatalf("Failed to show report: %v", err)
		}
		if err := common.WriteOutput(out, root.SharedFlags.Output, os.Stdout); err != nil {
			root.Log.Fatalf("Failed to write report: %v", err)
		}
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored report",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := remove(historyStore(), args[0]); err != nil {
			root.Log.Fatalf("Failed to delete report: %v", err)
		}
		root.Log.Infof("Deleted report %s", args[0])
	},
}

func init() {
	Cmd.AddCommand(listCmd, showCmd, deleteCmd)
}

func historyStore() store.HistoryStore {
	c := root.GetContainer()
	if c == nil {
		return nil
	}
	return c.GetHistory()
}

func list(h store.HistoryStore, w io.Writer) error {
	if h == nil {
		return errDisabled
	}
	entries, err := h.List()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tENTITY\tSCORE\tRISK")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			e.ID, e.CreatedAt.Format("2006-01-02 15:04"), e.EntityName, e.Score, e.RiskLevel)
	}
	return tw.Flush()
}

func show(h store.HistoryStore, g *report.ReportGenerator, id, format string) ([]byte, error) {
	if h == nil {
		return nil, errDisabled
	}
	rep, err := h.Get(id)
	if err != nil {
		return nil, err
	}
	return g.GenerateReport(rep, format)
}

func remove(h store.HistoryStore, id string) error {
	if h == nil {
		return errDisabled
	}
	return h.Delete(id)
}
