// Package vocab provides the immutable vocabulary sets used to decide
// whether a corpus token is a known word form or out-of-vocabulary.
package vocab

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// OutOfVocabulary replaces any token that is not in the vocabulary. It can
// never collide with a real token because punctuation is trimmed from the
// beginning and end of every word.
const OutOfVocabulary = "<unk>"

//go:embed dictionaries/en.txt
var enDict []byte

//go:embed dictionaries/pl.txt
var plDict []byte

var dictionaries = map[string][]byte{
	"en": enDict,
	"pl": plDict,
}

// Set is a read-only vocabulary. It is safe for concurrent use because it
// is never mutated after construction.
type Set struct {
	words map[string]struct{}
}

// Load returns the embedded vocabulary for a two-letter language code.
// Unsupported codes return an error naming the language.
func Load(languageCode string) (*Set, error) {
	data, ok := dictionaries[languageCode]
	if !ok {
		return nil, fmt.Errorf("no dictionary available for language %s", languageCode)
	}

	words := make(map[string]struct{})
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := norm.NFKC.String(sc.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimFunc(line, IsTrimmable)
		if line == "" {
			continue
		}
		words[line] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s dictionary: %w", languageCode, err)
	}

	return &Set{words: words}, nil
}

// New builds a vocabulary from a fixed word list, bypassing the embedded
// dictionaries. The words are taken as-is, with no normalization.
func New(words []string) *Set {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return &Set{words: set}
}

// Contains reports whether token is a known word form.
func (s *Set) Contains(token string) bool {
	_, ok := s.words[token]
	return ok
}

// Len returns the number of word forms in the vocabulary.
func (s *Set) Len() int {
	return len(s.words)
}

// Languages lists the supported language codes.
func Languages() []string {
	return []string{"en", "pl"}
}

// Supported reports whether a language code has an embedded dictionary.
func Supported(languageCode string) bool {
	_, ok := dictionaries[languageCode]
	return ok
}

// IsTrimmable reports whether a rune is stripped from the edges of a token:
// ASCII punctuation or any whitespace.
func IsTrimmable(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	// ASCII punctuation: graphic, non-alphanumeric characters in !..~
	if r < '!' || r > '~' {
		return false
	}
	switch {
	case r >= '0' && r <= '9':
		return false
	case r >= 'A' && r <= 'Z':
		return false
	case r >= 'a' && r <= 'z':
		return false
	}
	return true
}
