package ngram

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"

	"github.com/corpustools/wordfreq/pkg/lineio"
)

// DefaultArticleThreshold is the minimum number of articles a word must
// appear in for it to be included in the serialized frequency table.
const DefaultArticleThreshold uint64 = 40

// OutputPath returns where WriteFrequencies will place the compressed
// table: outputFile inside dir, with ".gz" appended.
func OutputPath(dir, outputFile string) string {
	return filepath.Join(dir, outputFile+".gz")
}

// articleCount returns the article count used by the threshold filter. A
// token with no entry at all is treated as infinitely frequent and always
// passes; this mirrors longstanding behavior and is deliberately not
// tightened up.
func (r *Result) articleCount(token string) uint64 {
	count, ok := r.UnigramArticleCounts[token]
	if !ok {
		return math.MaxUint64
	}
	return count
}

// WriteFrequencies serializes r as a gzip-compressed frequency table at
// OutputPath(dir, outputFile), with outputFile recorded in the gzip header.
// Unigrams are written when their article count exceeds threshold; bigrams
// when both member tokens pass the same test. The header reports the
// unfiltered map sizes, not the number of rows surviving the filter.
// Entries are sorted by token so output is byte-identical across runs.
func (r *Result) WriteFrequencies(dir, outputFile string, threshold uint64) (string, error) {
	path := OutputPath(dir, outputFile)
	w, err := lineio.CreateGzip(path, outputFile)
	if err != nil {
		return "", err
	}

	if err := r.writeTable(w, threshold); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write frequency table %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize frequency table %s: %w", path, err)
	}
	return path, nil
}

func (r *Result) writeTable(w *lineio.GzipWriter, threshold uint64) error {
	if err := w.WriteLine(`\data\`); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "total unigrams = %d\n", r.TotalUnigrams); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "ngram 1 = %d\n", len(r.UnigramCounts)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "ngram 2 = %d\n", len(r.BigramCounts)); err != nil {
		return err
	}
	if err := w.WriteLine(""); err != nil {
		return err
	}

	if err := w.WriteLine(`\1-grams:`); err != nil {
		return err
	}
	unigrams := make([]string, 0, len(r.UnigramCounts))
	for token := range r.UnigramCounts {
		unigrams = append(unigrams, token)
	}
	sort.Strings(unigrams)
	for _, token := range unigrams {
		if r.articleCount(token) <= threshold {
			continue
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\n", r.UnigramCounts[token], token); err != nil {
			return err
		}
	}
	if err := w.WriteLine(""); err != nil {
		return err
	}

	if err := w.WriteLine(`\2-grams:`); err != nil {
		return err
	}
	bigrams := make([]Bigram, 0, len(r.BigramCounts))
	for pair := range r.BigramCounts {
		bigrams = append(bigrams, pair)
	}
	sort.Slice(bigrams, func(i, j int) bool {
		if bigrams[i].First != bigrams[j].First {
			return bigrams[i].First < bigrams[j].First
		}
		return bigrams[i].Second < bigrams[j].Second
	})
	for _, pair := range bigrams {
		if r.articleCount(pair.First) <= threshold || r.articleCount(pair.Second) <= threshold {
			continue
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", r.BigramCounts[pair], pair.First, pair.Second); err != nil {
			return err
		}
	}
	if err := w.WriteLine(""); err != nil {
		return err
	}

	return w.WriteLine(`\end\`)
}
