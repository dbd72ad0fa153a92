// Package runs implements the runs CLI command, listing past run history.
package runs

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/corpustools/wordfreq/internal/common"
	"github.com/corpustools/wordfreq/models"
	"github.com/corpustools/wordfreq/pkg/db"
)

// RunsAction lists recorded runs from the history database as YAML,
// newest first.
func RunsAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	database, err := db.Open()
	if err != nil {
		return fmt.Errorf("failed to open run history database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		logger.Info("No runs recorded yet", "database", database.Path())
		return nil
	}

	summaries := make([]models.RunSummary, len(runs))
	for i, run := range runs {
		summaries[i] = models.RunSummary{
			RunID:          run.RunUUID,
			Command:        run.Command,
			InputDir:       run.InputDir,
			Language:       run.Language,
			ShardCount:     run.ShardCount,
			TotalUnigrams:  run.TotalUnigrams,
			UniqueUnigrams: run.UniqueUnigrams,
			UniqueBigrams:  run.UniqueBigrams,
			OutputPath:     run.OutputPath,
			DurationMS:     run.DurationMS,
			CreatedAt:      run.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}

	yamlBytes, err := yaml.Marshal(summaries)
	if err != nil {
		return fmt.Errorf("failed to marshal runs: %w", err)
	}
	fmt.Print(string(yamlBytes))
	return nil
}
