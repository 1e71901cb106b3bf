package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var capitalCmd = &cobra.Command{
	Use:   "capital",
	Short: "Show or set the capital baseline",
	Long: `Manage the starting-capital baseline used for growth projection.

Subcommands:
  show - Print the committed baseline
  set  - Save a new baseline

Examples:
  tradebook capital show
  tradebook capital set 100000`,
}

var capitalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the committed baseline",
	Args:  cobra.NoArgs,
	RunE:  runCapitalShow,
}

var capitalSetCmd = &cobra.Command{
	Use:   "set <amount>",
	Short: "Save a new baseline",
	Args:  cobra.ExactArgs(1),
	RunE:  runCapitalSet,
}

func init() {
	rootCmd.AddCommand(capitalCmd)
	capitalCmd.AddCommand(capitalShowCmd)
	capitalCmd.AddCommand(capitalSetCmd)
}

func runCapitalShow(cmd *cobra.Command, args []string) error {
	client, err := newStoreClient()
	if err != nil {
		return err
	}

	baseline, err := client.InitialCapital(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Initial capital: %.2f\n", baseline)
	return nil
}

func runCapitalSet(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("amount must be a number: %w", err)
	}

	client, err := newStoreClient()
	if err != nil {
		return err
	}
	sess, err := loadSession(cmd.Context(), client)
	if err != nil {
		return err
	}

	// Stage, save, then adopt whatever the store committed. On failure the
	// staged value is discarded and the committed baseline stands.
	sess.StageBaseline(value)
	committed, err := client.SetInitialCapital(cmd.Context(), sess.StagedBaseline())
	if err != nil {
		sess.CancelBaseline()
		return err
	}
	sess.CommitBaseline(committed)

	if committed != value {
		log.Debug("store normalized baseline",
			zap.Float64("staged", value), zap.Float64("committed", committed))
	}
	fmt.Printf("✓ Initial capital set to %.2f\n", sess.Baseline())
	return nil
}
