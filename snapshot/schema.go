package snapshot

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	external_id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	pnl REAL NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	photo TEXT NOT NULL DEFAULT '',
	trade_result TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS capital (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	initial_capital REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS sync_runs (
	run_id TEXT PRIMARY KEY,
	synced_at DATETIME NOT NULL,
	entry_count INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date);
`
