// Package splitter partitions a cirrussearch JSON dump into pseudo-random
// shard files of normalized plain text, one article per line.
package splitter

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/text/unicode/norm"

	"github.com/corpustools/wordfreq/pkg/lineio"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// shardSeed makes shard assignment reproducible across runs.
const shardSeed = 42

// progressEvery controls how often progress is logged, in articles.
const progressEvery = 10000

// Split reads the line-delimited JSON dump at inputPath and distributes its
// article texts over pieces gzip shard files in outputDir, which is deleted
// and recreated. Each shard line is one article, NFKC-normalized. Returns
// the number of articles written.
func Split(logger *slog.Logger, inputPath, outputDir string, pieces int) (int, error) {
	if pieces < 1 {
		return 0, fmt.Errorf("pieces must be positive, got %d", pieces)
	}

	if info, err := os.Stat(outputDir); err == nil && info.IsDir() {
		logger.Info("Deleting existing output directory", "dir", outputDir)
		if err := os.RemoveAll(outputDir); err != nil {
			return 0, fmt.Errorf("failed to delete output directory %s: %w", outputDir, err)
		}
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	stem := shardStem(inputPath)
	shards := make([]*lineio.GzipWriter, 0, pieces)
	closeAll := func() {
		for _, s := range shards {
			_ = s.Close()
		}
	}
	for i := 0; i < pieces; i++ {
		name := fmt.Sprintf("%s.split.%03d", stem, i)
		w, err := lineio.CreateGzip(filepath.Join(outputDir, name+".gz"), name)
		if err != nil {
			closeAll()
			return 0, err
		}
		shards = append(shards, w)
	}

	reader, err := lineio.Open(inputPath)
	if err != nil {
		closeAll()
		return 0, err
	}
	defer reader.Close()

	rng := rand.New(rand.NewSource(shardSeed))
	articles := 0
	var bytesWritten uint64
	for reader.Scan() {
		var record struct {
			Text *string `json:"text"`
		}
		if err := json.UnmarshalFromString(reader.Text(), &record); err != nil {
			closeAll()
			return articles, fmt.Errorf("malformed dump record: %w", err)
		}
		if record.Text == nil {
			continue
		}

		text := norm.NFKC.String(*record.Text)
		if err := shards[rng.Intn(pieces)].WriteLine(text); err != nil {
			closeAll()
			return articles, fmt.Errorf("failed to write shard line: %w", err)
		}
		bytesWritten += uint64(len(text)) + 1

		articles++
		if articles%progressEvery == 0 {
			logger.Info("Split progress",
				"articles", humanize.Comma(int64(articles)),
				"text_volume", humanize.Bytes(bytesWritten))
		}
	}

	for _, s := range shards {
		if err := s.Close(); err != nil {
			return articles, fmt.Errorf("failed to finalize shard: %w", err)
		}
	}
	logger.Info("Split complete",
		"articles", humanize.Comma(int64(articles)),
		"pieces", pieces,
		"text_volume", humanize.Bytes(bytesWritten))
	return articles, nil
}

// shardStem derives the shard filename prefix from the dump filename by
// dropping its final extension: "enwiki.json.gz" becomes "enwiki.json".
func shardStem(inputPath string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
