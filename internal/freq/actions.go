// Package freq implements the create-frequencies CLI command.
package freq

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/corpustools/wordfreq/internal/common"
	"github.com/corpustools/wordfreq/models"
	"github.com/corpustools/wordfreq/pkg/db"
	"github.com/corpustools/wordfreq/pkg/detector"
	"github.com/corpustools/wordfreq/pkg/ngram"
	"github.com/corpustools/wordfreq/pkg/vocab"
)

// CreateFrequenciesAction counts unigrams and bigrams across every shard
// file in the input directory and writes the thresholded frequency table.
func CreateFrequenciesAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))
	startTime := time.Now()

	config := &models.FrequenciesConfig{
		InputDir:      c.String("input-dir"),
		OutputFile:    c.String("output-file"),
		Language:      c.String("language"),
		Workers:       c.Int("workers"),
		Threshold:     c.Uint64("article-threshold"),
		SkipLangCheck: c.Bool("skip-language-check"),
	}

	// Setup errors are fatal before any parallel work starts.
	if info, err := os.Stat(config.InputDir); err != nil || !info.IsDir() {
		logger.Error("input path doesn't exist or isn't a directory", "input_dir", config.InputDir)
		os.Exit(2)
	}
	if !vocab.Supported(config.Language) {
		logger.Error("unsupported dictionary language code",
			"language", config.Language,
			"supported", strings.Join(vocab.Languages(), ", "))
		os.Exit(2)
	}

	dictionary, err := vocab.Load(config.Language)
	if err != nil {
		logger.Error("failed to load dictionary", "error", err)
		os.Exit(2)
	}
	logger.Info("Dictionary loaded", "language", config.Language, "words", dictionary.Len())

	shards, err := ngram.DiscoverShards(config.InputDir)
	if err != nil {
		logger.Error("failed to discover shards", "error", err)
		os.Exit(2)
	}
	workers := config.Workers
	if workers <= 0 {
		workers = ngram.DefaultWorkers()
	}
	logger.Info("Starting ngram calculation", "shards", len(shards), "workers", workers)

	detectedLanguage := ""
	if !config.SkipLangCheck {
		detected, ok, err := detector.SampleLanguage(config.InputDir, detector.DefaultSampleLines)
		if err != nil {
			logger.Warn("language detection failed", "error", err)
		} else if ok {
			detectedLanguage = detected
			if detected != config.Language {
				logger.Warn("shard text looks like a different language than the dictionary",
					"requested", config.Language, "detected", detected)
			}
		}
	}

	result, err := ngram.CountDir(config.InputDir, dictionary, config.Workers)
	if err != nil {
		return fmt.Errorf("ngram calculation failed: %w", err)
	}
	logger.Info("Ngram calculation complete",
		"total_unigrams", humanize.Comma(int64(result.TotalUnigrams)),
		"unique_unigrams", len(result.UnigramCounts),
		"unique_bigrams", len(result.BigramCounts))

	outputPath, err := result.WriteFrequencies(config.InputDir, config.OutputFile, config.Threshold)
	if err != nil {
		return err
	}
	logger.Info("Frequency table written", "path", outputPath)

	report := models.FrequenciesReport{
		RunID:            uuid.NewString(),
		InputDir:         config.InputDir,
		Language:         config.Language,
		DetectedLanguage: detectedLanguage,
		ShardCount:       len(shards),
		Workers:          workers,
		TotalUnigrams:    result.TotalUnigrams,
		UniqueUnigrams:   len(result.UnigramCounts),
		UniqueBigrams:    len(result.BigramCounts),
		OutputPath:       outputPath,
		DurationSeconds:  time.Since(startTime).Seconds(),
	}

	common.RecordRun(logger, db.Run{
		RunUUID:        report.RunID,
		Command:        c.Command.Name,
		InputDir:       config.InputDir,
		Language:       config.Language,
		ShardCount:     len(shards),
		TotalUnigrams:  result.TotalUnigrams,
		UniqueUnigrams: len(result.UnigramCounts),
		UniqueBigrams:  len(result.BigramCounts),
		OutputPath:     outputPath,
		DurationMS:     time.Since(startTime).Milliseconds(),
	})

	yamlBytes, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Print(string(yamlBytes))
	return nil
}
