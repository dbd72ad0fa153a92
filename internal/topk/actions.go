// Package topk implements the top-k-words CLI command.
package topk

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
	"github.com/corpustools/wordfreq/pkg/topk"
)

// maxWords bounds the top-K request size.
const maxWords = 100000

// TopKWordsAction extracts the top K unigrams from a frequency file.
func TopKWordsAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))
	startTime := time.Now()

	config := &models.TopKConfig{
		InputFile:         c.String("input-file"),
		OutputFile:        c.String("output-file"),
		MinimumWordLength: c.Int("minimum-word-length"),
		NumberOfWords:     c.Int("number-of-words"),
	}

	if info, err := os.Stat(config.InputFile); err != nil || info.IsDir() {
		logger.Error("input filepath does not exist or isn't a file", "input_file", config.InputFile)
		os.Exit(2)
	}
	if config.NumberOfWords < 1 || config.NumberOfWords > maxWords {
		logger.Error("number of words out of range", "number_of_words", config.NumberOfWords, "max", maxWords)
		os.Exit(2)
	}
	if config.MinimumWordLength < 1 {
		logger.Error("minimum word length cannot be 0", "minimum_word_length", config.MinimumWordLength)
		os.Exit(2)
	}

	written, err := topk.TopKWords(config.InputFile, config.OutputFile,
		config.MinimumWordLength, config.NumberOfWords)
	if err != nil {
		return fmt.Errorf("top-k-words failed: %w", err)
	}
	logger.Info("Top words written", "words", written, "path", config.OutputFile)

	report := models.TopKReport{
		RunID:           uuid.NewString(),
		InputFile:       config.InputFile,
		OutputFile:      config.OutputFile,
		WordsWritten:    written,
		DurationSeconds: time.Since(startTime).Seconds(),
	}

	common.RecordRun(logger, db.Run{
		RunUUID:    report.RunID,
		Command:    c.Command.Name,
		InputDir:   config.InputFile,
		OutputPath: config.OutputFile,
		DurationMS: time.Since(startTime).Milliseconds(),
	})

	yamlBytes, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Print(string(yamlBytes))
	return nil
}
