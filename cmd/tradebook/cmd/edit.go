package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tradebook/journal"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a journal entry",
	Long: `Edit an entry addressed by its listed id. Only the flags you pass
change; everything else keeps its stored value.

Examples:
  tradebook edit 3 --pnl 750
  tradebook edit 3 --date 2024-03-06 --result partial`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editDate   string
	editPnL    float64
	editNotes  string
	editPhoto  string
	editResult string
)

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVarP(&editDate, "date", "d", "", "trade date YYYY-MM-DD")
	editCmd.Flags().Float64VarP(&editPnL, "pnl", "n", 0, "profit or loss")
	editCmd.Flags().StringVar(&editNotes, "notes", "", "free-text notes")
	editCmd.Flags().StringVar(&editPhoto, "photo", "", "path to a screenshot to embed")
	editCmd.Flags().StringVarP(&editResult, "result", "r", "", "outcome tag")
}

func runEdit(cmd *cobra.Command, args []string) error {
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

	if cmd.Flags().Changed("date") {
		entry.Date, err = journal.ParseDate(editDate)
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("pnl") {
		entry.PnL = editPnL
	}
	if cmd.Flags().Changed("notes") {
		entry.Notes = editNotes
	}
	if cmd.Flags().Changed("photo") {
		entry.Photo, err = journal.PhotoFromFile(editPhoto)
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("result") {
		entry.Result = journal.Result(editResult)
	}

	if err := entry.Validate(); err != nil {
		return err
	}

	// The store is updated first; the in-memory list changes only after
	// the acknowledgement, so a failure leaves the last known-good state.
	if err := client.UpdateTrade(cmd.Context(), entry); err != nil {
		return err
	}
	if err := sess.Update(entry); err != nil {
		return err
	}

	fmt.Printf("✓ Updated trade #%d (%s, %+.2f)\n", entry.ID, journal.FormatDate(entry.Date), entry.PnL)
	return nil
}
