package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tradebook/journal"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a journal entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("id must be a number: %w", err)
	}

	client, err := newStoreClient()
	if err != nil {
		return err
	}
	sess, err := loadSession(cmd.Context(), client)
	if err != nil {
		return err
	}

	entry, ok := sess.Find(id)
	if !ok {
		return fmt.Errorf("no entry with id %d", id)
	}

	if err := client.DeleteTrade(cmd.Context(), entry.ExternalID); err != nil {
		return err
	}
	if _, err := sess.Remove(id); err != nil {
		return err
	}

	fmt.Printf("✓ Deleted trade #%d (%s, %+.2f)\n", entry.ID, journal.FormatDate(entry.Date), entry.PnL)
	return nil
}
