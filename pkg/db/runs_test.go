package db

import (
	"testing"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	// Use in-memory database for tests
	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestInsertRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	run := Run{
		RunUUID:        "11111111-2222-3333-4444-555555555555",
		Command:        "create-frequencies",
		InputDir:       "/corpus/shards",
		Language:       "en",
		ShardCount:     12,
		TotalUnigrams:  123456,
		UniqueUnigrams: 4321,
		UniqueBigrams:  9876,
		OutputPath:     "/corpus/shards/frequencies.txt.gz",
		DurationMS:     1500,
	}

	runID, err := db.InsertRun(run)
	if err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}
	if runID == 0 {
		t.Error("InsertRun() returned 0 ID")
	}

	got, err := db.GetRunByUUID(run.RunUUID)
	if err != nil {
		t.Fatalf("GetRunByUUID() error = %v", err)
	}
	if got.Command != run.Command {
		t.Errorf("Command = %q, want %q", got.Command, run.Command)
	}
	if got.TotalUnigrams != run.TotalUnigrams {
		t.Errorf("TotalUnigrams = %d, want %d", got.TotalUnigrams, run.TotalUnigrams)
	}
	if got.ShardCount != run.ShardCount {
		t.Errorf("ShardCount = %d, want %d", got.ShardCount, run.ShardCount)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestInsertRunDuplicateUUID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	run := Run{RunUUID: "dup", Command: "split", InputDir: "/x"}
	if _, err := db.InsertRun(run); err != nil {
		t.Fatalf("InsertRun() first call error = %v", err)
	}
	if _, err := db.InsertRun(run); err == nil {
		t.Error("InsertRun() with duplicate UUID returned nil error")
	}
}

func TestListRuns(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for _, uuid := range []string{"run-a", "run-b", "run-c"} {
		if _, err := db.InsertRun(Run{RunUUID: uuid, Command: "split", InputDir: "/x"}); err != nil {
			t.Fatalf("InsertRun(%s) error = %v", uuid, err)
		}
	}

	runs, err := db.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if got, want := len(runs), 2; got != want {
		t.Fatalf("len(runs) = %d, want %d", got, want)
	}
	// Newest first
	if got, want := runs[0].RunUUID, "run-c"; got != want {
		t.Errorf("runs[0].RunUUID = %q, want %q", got, want)
	}

	all, err := db.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns(0) error = %v", err)
	}
	if got, want := len(all), 3; got != want {
		t.Errorf("len(all) = %d, want %d", got, want)
	}
}

func TestListRunsEmpty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runs, err := db.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("len(runs) = %d, want 0", len(runs))
	}
}
