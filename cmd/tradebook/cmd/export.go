package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradebook/export"
	"tradebook/journal"
	"tradebook/stats"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a period as CSV or an org-mode report",
	Long: `Export the filtered journal for review outside the terminal.

Subcommands:
  csv - One row per entry
  org - An org-mode report with summary, capital and daily P&L

Examples:
  tradebook export csv --period 2024-03 --out march.csv
  tradebook export org --period 2024 --out 2024.org --offline`,
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export entries as CSV",
	RunE:  runExportCSV,
}

var exportOrgCmd = &cobra.Command{
	Use:   "org",
	Short: "Export an org-mode report",
	RunE:  runExportOrg,
}

var (
	exportPeriod  string
	exportOut     string
	exportOffline bool
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportCSVCmd)
	exportCmd.AddCommand(exportOrgCmd)

	exportCmd.PersistentFlags().StringVarP(&exportPeriod, "period", "p", "", "period YYYY-MM or YYYY (default current month)")
	exportCmd.PersistentFlags().StringVarP(&exportOut, "out", "o", "", "output file path (required)")
	exportCmd.PersistentFlags().BoolVar(&exportOffline, "offline", false, "read from the local snapshot instead of the API")
	exportCmd.MarkPersistentFlagRequired("out")
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	entries, _, err := exportSubset(cmd)
	if err != nil {
		return err
	}

	if err := export.ExportCSV(exportOut, entries); err != nil {
		return err
	}
	fmt.Printf("✓ Wrote %d entries to %s\n", len(entries), exportOut)
	return nil
}

func runExportOrg(cmd *cobra.Command, args []string) error {
	entries, report, err := exportSubset(cmd)
	if err != nil {
		return err
	}

	if err := report.WriteOrg(exportOut); err != nil {
		return err
	}
	fmt.Printf("✓ Wrote report for %d entries to %s (report %s)\n", len(entries), exportOut, report.ReportID)
	return nil
}

func exportSubset(cmd *cobra.Command) ([]journal.Entry, export.Report, error) {
	p, err := parsePeriod(exportPeriod)
	if err != nil {
		return nil, export.Report{}, err
	}

	sess, err := sessionFor(cmd, exportOffline)
	if err != nil {
		return nil, export.Report{}, err
	}

	entries := stats.Filter(sess.Entries(), p)
	return entries, export.NewReport(p, entries, sess.Baseline()), nil
}
