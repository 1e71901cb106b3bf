package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tradebook/auth"
	"tradebook/journal"
	"tradebook/snapshot"
	"tradebook/stats"
	"tradebook/store"
)

func newStoreClient() (*store.Client, error) {
	token, err := auth.LoadToken(cfg.API.CredentialsFile)
	if err != nil {
		return nil, err
	}
	return store.NewClient(cfg.API.URL, token), nil
}

// loadSession pulls the trade list and the capital baseline concurrently
// and builds the in-memory session. The two loads are independent: a
// failed baseline read falls back to the configured default instead of
// blocking the trade list.
func loadSession(ctx context.Context, client *store.Client) (*journal.Session, error) {
	var (
		entries    []journal.Entry
		baseline   float64
		entriesErr error
		capitalErr error
		wg         sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		entries, entriesErr = client.ListTrades(ctx)
	}()
	go func() {
		defer wg.Done()
		baseline, capitalErr = client.InitialCapital(ctx)
	}()
	wg.Wait()

	if entriesErr != nil {
		return nil, entriesErr
	}
	if capitalErr != nil {
		log.Warn("capital baseline unavailable, using configured default",
			zap.Float64("default", cfg.Capital.Default), zap.Error(capitalErr))
		baseline = cfg.Capital.Default
	}

	sess := journal.NewSession(baseline)
	sess.Load(entries)
	log.Debug("session loaded", zap.Int("entries", sess.Len()), zap.Float64("baseline", baseline))
	return sess, nil
}

// loadOfflineSession builds the session from the local snapshot instead of
// the network.
func loadOfflineSession() (*journal.Session, error) {
	db, err := snapshot.Open(cfg.Snapshot.DBPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	entries, err := db.Entries()
	if err != nil {
		return nil, err
	}

	baseline, ok, err := db.InitialCapital()
	if err != nil {
		return nil, err
	}
	if !ok {
		baseline = cfg.Capital.Default
	}

	if run, ok, err := db.LastSync(); err == nil && ok {
		log.Debug("using snapshot", zap.String("run_id", run.RunID),
			zap.Time("synced_at", run.SyncedAt))
	}

	sess := journal.NewSession(baseline)
	sess.Load(entries)
	return sess, nil
}

// sessionFor builds the session from the snapshot when offline is set,
// and from the API otherwise.
func sessionFor(cmd *cobra.Command, offline bool) (*journal.Session, error) {
	if offline {
		return loadOfflineSession()
	}
	client, err := newStoreClient()
	if err != nil {
		return nil, err
	}
	return loadSession(cmd.Context(), client)
}

// parsePeriod reads a period flag: "2024-03" selects one month, "2024"
// a whole year, and the empty string the current month.
func parsePeriod(s string) (stats.Period, error) {
	if s == "" {
		now := time.Now()
		return stats.MonthOf(now.Year(), now.Month()), nil
	}

	if strings.Contains(s, "-") {
		t, err := time.Parse("2006-01", s)
		if err != nil {
			return stats.Period{}, fmt.Errorf("period must be YYYY-MM or YYYY: %w", err)
		}
		return stats.MonthOf(t.Year(), t.Month()), nil
	}

	year, err := strconv.Atoi(s)
	if err != nil || year < 1000 || year > 9999 {
		return stats.Period{}, fmt.Errorf("period must be YYYY-MM or a four-digit year")
	}
	return stats.YearOf(year), nil
}
