package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradebook/render"
	"tradebook/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics for a period",
	Long: `Show trade count, profit, loss, net P&L, win rate and capital growth
for one month or year.

Examples:
  tradebook stats
  tradebook stats --period 2024-03
  tradebook stats --period 2024 --offline`,
	RunE: runStats,
}

var (
	statsPeriod  string
	statsOffline bool
)

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsPeriod, "period", "p", "", "period YYYY-MM or YYYY (default current month)")
	statsCmd.Flags().BoolVar(&statsOffline, "offline", false, "read from the local snapshot instead of the API")
}

func runStats(cmd *cobra.Command, args []string) error {
	p, err := parsePeriod(statsPeriod)
	if err != nil {
		return err
	}

	sess, err := sessionFor(cmd, statsOffline)
	if err != nil {
		return err
	}

	filtered := stats.Filter(sess.Entries(), p)

	fmt.Print(render.Summary(stats.Summarize(filtered)))
	fmt.Println()
	fmt.Print(render.Projection(stats.Project(sess.Baseline(), filtered)))
	return nil
}
