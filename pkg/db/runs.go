package db

import (
	"fmt"
	"time"
)

// Run is one recorded subcommand run.
type Run struct {
	RunID          int64
	RunUUID        string
	Command        string
	InputDir       string
	Language       string
	ShardCount     int
	TotalUnigrams  uint64
	UniqueUnigrams int
	UniqueBigrams  int
	OutputPath     string
	DurationMS     int64
	CreatedAt      time.Time
}

// InsertRun records a completed run and returns its row ID.
func (db *DB) InsertRun(run Run) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (run_uuid, command, input_dir, language, shard_count,
			total_unigrams, unique_unigrams, unique_bigrams, output_path, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.RunUUID, run.Command, run.InputDir, run.Language, run.ShardCount,
		run.TotalUnigrams, run.UniqueUnigrams, run.UniqueBigrams, run.OutputPath, run.DurationMS)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	return result.LastInsertId()
}

// ListRuns returns the most recent runs, newest first. limit <= 0 returns
// all of them.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, run_uuid, command, input_dir, language, shard_count,
			total_unigrams, unique_unigrams, unique_bigrams, output_path,
			duration_ms, created_at
		FROM runs
		ORDER BY run_id DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.RunID, &run.RunUUID, &run.Command, &run.InputDir,
			&run.Language, &run.ShardCount, &run.TotalUnigrams, &run.UniqueUnigrams,
			&run.UniqueBigrams, &run.OutputPath, &run.DurationMS, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRunByUUID looks a run up by its external identifier.
func (db *DB) GetRunByUUID(runUUID string) (*Run, error) {
	var run Run
	err := db.QueryRow(`
		SELECT run_id, run_uuid, command, input_dir, language, shard_count,
			total_unigrams, unique_unigrams, unique_bigrams, output_path,
			duration_ms, created_at
		FROM runs WHERE run_uuid = ?
	`, runUUID).Scan(&run.RunID, &run.RunUUID, &run.Command, &run.InputDir,
		&run.Language, &run.ShardCount, &run.TotalUnigrams, &run.UniqueUnigrams,
		&run.UniqueBigrams, &run.OutputPath, &run.DurationMS, &run.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get run %s: %w", runUUID, err)
	}
	return &run, nil
}
