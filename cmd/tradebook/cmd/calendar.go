package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradebook/render"
	"tradebook/stats"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the per-day P&L calendar for a month",
	Long: `Show a calendar of the month with each day's accumulated P&L.

Examples:
  tradebook calendar
  tradebook calendar --month 2024-03 --offline`,
	RunE: runCalendar,
}

var (
	calendarMonth   string
	calendarOffline bool
)

func init() {
	rootCmd.AddCommand(calendarCmd)

	calendarCmd.Flags().StringVarP(&calendarMonth, "month", "m", "", "month YYYY-MM (default current month)")
	calendarCmd.Flags().BoolVar(&calendarOffline, "offline", false, "read from the local snapshot instead of the API")
}

func runCalendar(cmd *cobra.Command, args []string) error {
	p, err := parsePeriod(calendarMonth)
	if err != nil {
		return err
	}
	if p.Mode != stats.ByMonth {
		return fmt.Errorf("calendar needs a month, use --month YYYY-MM")
	}

	sess, err := sessionFor(cmd, calendarOffline)
	if err != nil {
		return err
	}

	buckets := stats.Bucketize(stats.Filter(sess.Entries(), p))
	fmt.Print(render.Calendar(p.Year, p.Month, buckets))
	return nil
}
