package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Runs table: one row per completed subcommand run
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_uuid TEXT NOT NULL UNIQUE,
    command TEXT NOT NULL,            -- split, create-frequencies, top-k-words
    input_dir TEXT NOT NULL,
    language TEXT,
    shard_count INTEGER DEFAULT 0,
    total_unigrams INTEGER DEFAULT 0,
    unique_unigrams INTEGER DEFAULT 0,
    unique_bigrams INTEGER DEFAULT 0,
    output_path TEXT,
    duration_ms INTEGER DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
CREATE INDEX IF NOT EXISTS idx_runs_command ON runs(command);
`
