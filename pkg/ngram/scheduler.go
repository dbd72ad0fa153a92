package ngram

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/corpustools/wordfreq/pkg/vocab"
)

// DefaultWorkers returns the pool size for CountDir: one core is reserved
// for the merging goroutine, minimum one worker.
func DefaultWorkers() int {
	n := runtime.NumCPU() - 1
	if n < 1 {
		n = 1
	}
	return n
}

// DiscoverShards lists the regular files in dir whose filename stem
// contains "split", sorted by name. This is how shard files are told apart
// from anything else living in the directory, such as the output file.
func DiscoverShards(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read shard directory %s: %w", dir, err)
	}

	var shards []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if strings.Contains(stem, "split") {
			shards = append(shards, filepath.Join(dir, name))
		}
	}
	sort.Strings(shards)
	return shards, nil
}

type shardResult struct {
	path   string
	result *Result
	err    error
}

// CountDir runs CountFile over every shard file in dir across a worker
// pool and folds the shard results into one corpus-wide Result. workers <= 0
// selects DefaultWorkers. The vocabulary is shared read-only across all
// workers. The first shard failure aborts the whole computation: a silently
// incomplete frequency table would be worse than a hard failure.
func CountDir(dir string, dict *vocab.Set, workers int) (*Result, error) {
	shards, err := DiscoverShards(dir)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = DefaultWorkers()
	}

	jobs := make(chan string, len(shards))
	// Buffered to the shard count so no worker ever blocks delivering a
	// result while the merger is busy.
	results := make(chan shardResult, len(shards))
	cancel := make(chan struct{})

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				select {
				case <-cancel:
					// A sibling failed; drain remaining jobs without
					// counting them.
					continue
				default:
				}
				result, err := CountFile(path, dict)
				results <- shardResult{path: path, result: result, err: err}
			}
		}()
	}

	for _, path := range shards {
		jobs <- path
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	merged := NewResult()
	var firstErr error
	for sr := range results {
		if sr.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to count ngrams in shard %s: %w", sr.path, sr.err)
				close(cancel)
			}
			continue
		}
		if firstErr == nil {
			merged.Merge(sr.result)
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return merged, nil
}
