package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tradebook/journal"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a trade",
	Long: `Log a trade in the journal.

Examples:
  tradebook add --pnl 5000 --result tp_hit
  tradebook add --date 2024-03-05 --pnl -2000 --result sl_hit --notes "chased the entry"
  tradebook add --pnl 1200 --photo ./screenshots/entry.png`,
	RunE: runAdd,
}

var (
	addDate   string
	addPnL    float64
	addNotes  string
	addPhoto  string
	addResult string
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "trade date YYYY-MM-DD (default today)")
	addCmd.Flags().Float64VarP(&addPnL, "pnl", "n", 0, "profit or loss (required)")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "free-text notes")
	addCmd.Flags().StringVar(&addPhoto, "photo", "", "path to a screenshot to embed")
	addCmd.Flags().StringVarP(&addResult, "result", "r", "", "outcome: tp_hit, sl_hit, partial, breakeven, missed, manual_exit")
	addCmd.MarkFlagRequired("pnl")
}

func runAdd(cmd *cobra.Command, args []string) error {
	date := time.Now()
	if addDate != "" {
		var err error
		date, err = journal.ParseDate(addDate)
		if err != nil {
			return err
		}
	} else {
		// Normalize to a bare calendar date.
		date, _ = journal.ParseDate(journal.FormatDate(date))
	}

	entry := journal.Entry{
		Date:   date,
		PnL:    addPnL,
		Notes:  addNotes,
		Result: journal.Result(addResult),
	}

	if addPhoto != "" {
		photo, err := journal.PhotoFromFile(addPhoto)
		if err != nil {
			return err
		}
		entry.Photo = photo
	}

	if err := entry.Validate(); err != nil {
		return err
	}

	client, err := newStoreClient()
	if err != nil {
		return err
	}
	sess, err := loadSession(cmd.Context(), client)
	if err != nil {
		return err
	}

	externalID, err := client.CreateTrade(cmd.Context(), entry)
	if err != nil {
		return err
	}
	entry.ExternalID = externalID
	entry = sess.Add(entry)

	log.Debug("trade created", zap.Int("id", entry.ID), zap.String("external_id", externalID))
	fmt.Printf("✓ Logged trade #%d (%s, %+.2f)\n", entry.ID, journal.FormatDate(entry.Date), entry.PnL)
	return nil
}
