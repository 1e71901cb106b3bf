package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradebook/render"
	"tradebook/stats"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries for a period",
	Long: `List journal entries, filtered to one month or year.

Examples:
  tradebook list
  tradebook list --period 2024-03
  tradebook list --period 2024
  tradebook list --all --offline`,
	RunE: runList,
}

var (
	listPeriod  string
	listAll     bool
	listOffline bool
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listPeriod, "period", "p", "", "period YYYY-MM or YYYY (default current month)")
	listCmd.Flags().BoolVar(&listAll, "all", false, "show every entry, ignoring the period")
	listCmd.Flags().BoolVar(&listOffline, "offline", false, "read from the local snapshot instead of the API")
}

func runList(cmd *cobra.Command, args []string) error {
	sess, err := sessionFor(cmd, listOffline)
	if err != nil {
		return err
	}

	entries := sess.Entries()
	if !listAll {
		p, err := parsePeriod(listPeriod)
		if err != nil {
			return err
		}
		entries = stats.Filter(entries, p)
	}

	fmt.Print(render.Entries(entries))
	return nil
}
