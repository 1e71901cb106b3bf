// Package snapshot keeps a local SQLite copy of the remote journal so
// stats, the calendar and exports work without the network. It is derived
// data, rebuilt wholesale on every sync; the remote store stays the source
// of truth.
package snapshot

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"tradebook/journal"
	"tradebook/pkg/id"
)

type DB struct {
	db *sql.DB
}

// Open opens (creating if needed) the snapshot database at path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create snapshot schema: %w", err)
	}
	return &DB{db: db}, nil
}

// SyncRun records one completed pull from the remote store.
type SyncRun struct {
	RunID      string
	SyncedAt   time.Time
	EntryCount int
}

// Replace swaps the cached journal for the given entries and baseline in
// one transaction and stamps the run with a fresh id. Entries without a
// store identifier are skipped: they were never acknowledged remotely and
// would collide on the primary key.
func (d *DB) Replace(entries []journal.Entry, baseline float64) (SyncRun, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return SyncRun{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return SyncRun{}, fmt.Errorf("clear entries: %w", err)
	}

	count := 0
	for _, e := range entries {
		if e.ExternalID == "" {
			continue
		}
		_, err := tx.Exec(`
			INSERT INTO entries (external_id, date, pnl, notes, photo, trade_result)
			VALUES (?, ?, ?, ?, ?, ?)`,
			e.ExternalID, journal.FormatDate(e.Date), e.PnL, e.Notes, e.Photo, string(e.Result),
		)
		if err != nil {
			return SyncRun{}, fmt.Errorf("insert entry %s: %w", e.ExternalID, err)
		}
		count++
	}

	_, err = tx.Exec(`
		INSERT INTO capital (id, initial_capital) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET initial_capital = excluded.initial_capital`,
		baseline,
	)
	if err != nil {
		return SyncRun{}, fmt.Errorf("save capital: %w", err)
	}

	run := SyncRun{
		RunID:      id.New(),
		SyncedAt:   time.Now().UTC(),
		EntryCount: count,
	}
	_, err = tx.Exec(`INSERT INTO sync_runs (run_id, synced_at, entry_count) VALUES (?, ?, ?)`,
		run.RunID, run.SyncedAt, run.EntryCount)
	if err != nil {
		return SyncRun{}, fmt.Errorf("record sync run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return SyncRun{}, fmt.Errorf("commit: %w", err)
	}
	return run, nil
}

// Entries returns the cached journal ordered by date. Local ids are a
// session concern and are left unset.
func (d *DB) Entries() ([]journal.Entry, error) {
	rows, err := d.db.Query(`
		SELECT external_id, date, pnl, notes, photo, trade_result
		FROM entries
		ORDER BY date ASC, external_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var out []journal.Entry
	for rows.Next() {
		var (
			e      journal.Entry
			date   string
			result string
		)
		if err := rows.Scan(&e.ExternalID, &date, &e.PnL, &e.Notes, &e.Photo, &result); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.Date, _ = journal.ParseDate(date)
		e.Result = journal.Result(result)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// InitialCapital returns the cached baseline; ok is false when no sync has
// stored one yet.
func (d *DB) InitialCapital() (float64, bool, error) {
	var v float64
	err := d.db.QueryRow(`SELECT initial_capital FROM capital WHERE id = 1`).Scan(&v)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query capital: %w", err)
	}
	return v, true, nil
}

// LastSync returns the most recent sync run; ok is false when the cache
// has never been synced.
func (d *DB) LastSync() (SyncRun, bool, error) {
	var run SyncRun
	err := d.db.QueryRow(`
		SELECT run_id, synced_at, entry_count
		FROM sync_runs
		ORDER BY synced_at DESC, run_id DESC
		LIMIT 1`).Scan(&run.RunID, &run.SyncedAt, &run.EntryCount)
	if err == sql.ErrNoRows {
		return SyncRun{}, false, nil
	}
	if err != nil {
		return SyncRun{}, false, fmt.Errorf("query sync runs: %w", err)
	}
	return run, true, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}
