// Package split implements the split CLI command.
package split

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/corpustools/wordfreq/internal/common"
	"github.com/corpustools/wordfreq/models"
	"github.com/corpustools/wordfreq/pkg/db"
	"github.com/corpustools/wordfreq/pkg/splitter"
)

// maxPieces bounds the shard count; more shards than this means more open
// file handles than is reasonable for one split.
const maxPieces = 1024

// SplitAction partitions a cirrussearch JSON dump into gzip shard files.
func SplitAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))
	startTime := time.Now()

	config := &models.SplitConfig{
		InputPath: c.String("input-path"),
		OutputDir: c.String("output-dir"),
		Pieces:    c.Int("pieces"),
	}

	if info, err := os.Stat(config.InputPath); err != nil || info.IsDir() {
		logger.Error("input filepath does not exist or isn't a file", "input_path", config.InputPath)
		os.Exit(2)
	}
	if config.Pieces < 1 || config.Pieces > maxPieces {
		logger.Error("pieces out of range", "pieces", config.Pieces, "max", maxPieces)
		os.Exit(2)
	}

	articles, err := splitter.Split(logger, config.InputPath, config.OutputDir, config.Pieces)
	if err != nil {
		return fmt.Errorf("split failed: %w", err)
	}

	report := models.SplitReport{
		RunID:           uuid.NewString(),
		InputPath:       config.InputPath,
		OutputDir:       config.OutputDir,
		Pieces:          config.Pieces,
		Articles:        articles,
		DurationSeconds: time.Since(startTime).Seconds(),
	}

	common.RecordRun(logger, db.Run{
		RunUUID:    report.RunID,
		Command:    c.Command.Name,
		InputDir:   config.OutputDir,
		ShardCount: config.Pieces,
		DurationMS: time.Since(startTime).Milliseconds(),
	})

	yamlBytes, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Print(string(yamlBytes))
	return nil
}
