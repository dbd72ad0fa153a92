// Package ngram computes unigram and bigram frequency statistics over a
// sharded text corpus: one counting pass per shard file, run across a
// worker pool, folded into a single corpus-wide result.
package ngram

// Bigram is an ordered pair of adjacent tokens within one article line.
// Bigrams never cross line or shard boundaries.
type Bigram struct {
	First  string
	Second string
}

// Result holds n-gram counts. A fresh Result is produced per shard and the
// shard results are merged into one corpus-wide Result of the same shape.
type Result struct {
	// TotalUnigrams is the number of unigram occurrences tallied. The
	// probability of a unigram is its count divided by this.
	TotalUnigrams uint64

	// UnigramCounts maps a token to its occurrence count. A token occurring
	// more than once in an article is counted once per occurrence.
	UnigramCounts map[string]uint64

	// UnigramArticleCounts maps a token to the number of distinct articles
	// it appears in, incremented at most once per article.
	UnigramArticleCounts map[string]uint64

	// BigramCounts maps an adjacent token pair to its co-occurrence count.
	// The probability of (w1, w2) is its count divided by the count of w1.
	BigramCounts map[Bigram]uint64
}

// NewResult returns an empty Result.
func NewResult() *Result {
	return &Result{
		UnigramCounts:        make(map[string]uint64),
		UnigramArticleCounts: make(map[string]uint64),
		BigramCounts:         make(map[Bigram]uint64),
	}
}

// Merge folds other into r by point-wise addition over the union of keys.
// The fold is associative and commutative, so shard results may be merged
// in any order and in any grouping with an identical final result.
func (r *Result) Merge(other *Result) {
	r.TotalUnigrams += other.TotalUnigrams

	for token, count := range other.UnigramCounts {
		r.UnigramCounts[token] += count
	}
	for token, count := range other.UnigramArticleCounts {
		r.UnigramArticleCounts[token] += count
	}
	for pair, count := range other.BigramCounts {
		r.BigramCounts[pair] += count
	}
}
