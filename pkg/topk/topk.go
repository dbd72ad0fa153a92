// Package topk extracts the most frequent unigrams from a serialized
// frequency table.
package topk

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/corpustools/wordfreq/pkg/lineio"
	"github.com/corpustools/wordfreq/pkg/vocab"
)

// Entry is one unigram row read from a frequency table.
type Entry struct {
	Word  string
	Count uint64
}

// LoadSortedUnigrams reads the \1-grams: section of a frequency file
// (gzip-compressed or plain) and returns its entries sorted by count
// descending. The out-of-vocabulary sentinel is skipped.
func LoadSortedUnigrams(inputFile string) ([]Entry, error) {
	reader, err := lineio.Open(inputFile)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var entries []Entry
	loading := false
	for reader.Scan() {
		line := reader.Text()
		if strings.HasPrefix(line, `\1-grams:`) {
			loading = true
			continue
		}
		if !loading {
			continue
		}
		if strings.TrimSpace(line) == "" {
			break
		}

		elems := strings.Split(line, "\t")
		if len(elems) < 2 {
			return nil, fmt.Errorf("malformed 1-gram row in %s: %q", inputFile, line)
		}
		count, err := strconv.ParseUint(elems[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed 1-gram count in %s: %q", inputFile, elems[0])
		}
		word := strings.TrimRight(elems[1], " \t")
		if word == vocab.OutOfVocabulary {
			continue
		}
		entries = append(entries, Entry{Word: word, Count: count})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries, nil
}

// TopKWords writes the numberOfWords most frequent unigrams from inputFile
// to outputFile, one word per line, uncompressed. Words shorter than
// minimumWordLength bytes are skipped before the top-K cut.
func TopKWords(inputFile, outputFile string, minimumWordLength, numberOfWords int) (int, error) {
	entries, err := LoadSortedUnigrams(inputFile)
	if err != nil {
		return 0, err
	}

	words := make([]string, 0, numberOfWords)
	for _, entry := range entries {
		if len(entry.Word) < minimumWordLength {
			continue
		}
		words = append(words, entry.Word)
		if len(words) == numberOfWords {
			break
		}
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return 0, fmt.Errorf("could not create output file %s: %w", outputFile, err)
	}
	w := bufio.NewWriter(file)
	for _, word := range words {
		if _, err := w.WriteString(word + "\n"); err != nil {
			_ = file.Close()
			return 0, err
		}
	}
	if err := w.Flush(); err != nil {
		_ = file.Close()
		return 0, err
	}
	if err := file.Close(); err != nil {
		return 0, err
	}
	return len(words), nil
}
