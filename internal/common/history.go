// Package common holds helpers shared by the CLI command packages.
package common

import (
	"log/slog"

	"github.com/corpustools/wordfreq/pkg/db"
)

// RecordRun stores a completed run in the local history database. History
// is a convenience, so failures are logged and otherwise ignored.
func RecordRun(logger *slog.Logger, run db.Run) {
	database, err := db.Open()
	if err != nil {
		logger.Warn("failed to open run history database", "error", err)
		return
	}
	defer database.Close()

	if _, err := database.InsertRun(run); err != nil {
		logger.Warn("failed to record run", "error", err)
	}
}
