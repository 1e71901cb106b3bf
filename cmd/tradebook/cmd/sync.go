package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tradebook/snapshot"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull the journal into the local snapshot",
	Long: `Pull the full trade list and the capital baseline into the local
SQLite snapshot, so list/stats/calendar/export work with --offline.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	client, err := newStoreClient()
	if err != nil {
		return err
	}
	sess, err := loadSession(cmd.Context(), client)
	if err != nil {
		return err
	}

	db, err := snapshot.Open(cfg.Snapshot.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	run, err := db.Replace(sess.Entries(), sess.Baseline())
	if err != nil {
		return err
	}

	log.Debug("snapshot replaced", zap.String("run_id", run.RunID))
	fmt.Printf("✓ Synced %d entries to %s (run %s)\n", run.EntryCount, cfg.Snapshot.DBPath, run.RunID)
	return nil
}
