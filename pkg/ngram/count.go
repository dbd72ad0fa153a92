package ngram

import (
	"strings"

	"github.com/corpustools/wordfreq/pkg/lineio"
	"github.com/corpustools/wordfreq/pkg/vocab"
)

// CountFile tokenizes one shard file and returns its n-gram counts. Each
// line is one article. Tokens are whitespace-split, trimmed of ASCII
// punctuation at both ends, and replaced by vocab.OutOfVocabulary when not
// in the vocabulary; no case folding happens here, the corpus splitter has
// already normalized the text.
func CountFile(path string, dict *vocab.Set) (*Result, error) {
	reader, err := lineio.Open(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	result := NewResult()
	tokens := make([]string, 0, 256)
	for reader.Scan() {
		tokens = tokens[:0]
		for _, raw := range strings.Fields(reader.Text()) {
			token := strings.TrimFunc(raw, vocab.IsTrimmable)
			if !dict.Contains(token) {
				token = vocab.OutOfVocabulary
			}
			tokens = append(tokens, token)
		}
		countLine(result, tokens)
	}
	return result, nil
}

// countLine tallies one article's tokens into result.
func countLine(result *Result, tokens []string) {
	// Pair walk: the last token is never visited as the left element, so
	// it is not tallied as a unigram here.
	for i := 0; i+1 < len(tokens); i++ {
		result.TotalUnigrams++
		result.UnigramCounts[tokens[i]]++
		result.BigramCounts[Bigram{First: tokens[i], Second: tokens[i+1]}]++
	}

	// Tack the last token on as a unigram, but only when the line has at
	// least two tokens. A single-token line contributes no unigram
	// occurrences at all.
	if len(tokens) >= 2 {
		result.TotalUnigrams++
		result.UnigramCounts[tokens[len(tokens)-1]]++
	}

	// Article counts: at most one increment per distinct token per line.
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		result.UnigramArticleCounts[token]++
	}
}
