// Package detector cross-checks the language of a shard directory against
// the dictionary language requested for a run.
package detector

import (
	"strings"

	"github.com/pemistahl/lingua-go"

	"github.com/corpustools/wordfreq/pkg/lineio"
	"github.com/corpustools/wordfreq/pkg/ngram"
)

// DefaultSampleLines caps how much shard text is fed to the detector; a
// few hundred articles is plenty for a confident call.
const DefaultSampleLines = 200

// SampleLanguage reads up to maxLines article lines from the shard files
// in dir and returns the detected two-letter language code. ok is false
// when the directory holds no usable text or detection is inconclusive.
// Detection is advisory only, so shard read errors simply end the sample.
func SampleLanguage(dir string, maxLines int) (code string, ok bool, err error) {
	shards, err := ngram.DiscoverShards(dir)
	if err != nil {
		return "", false, err
	}
	if maxLines <= 0 {
		maxLines = DefaultSampleLines
	}

	var sample strings.Builder
	lines := 0
	for _, shard := range shards {
		if lines >= maxLines {
			break
		}
		reader, err := lineio.Open(shard)
		if err != nil {
			continue
		}
		for lines < maxLines && reader.Scan() {
			line := strings.TrimSpace(reader.Text())
			if line == "" {
				continue
			}
			sample.WriteString(line)
			sample.WriteByte('\n')
			lines++
		}
		_ = reader.Close()
	}
	if sample.Len() == 0 {
		return "", false, nil
	}

	det := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.Polish).
		Build()
	language, found := det.DetectLanguageOf(sample.String())
	if !found {
		return "", false, nil
	}
	return strings.ToLower(language.IsoCode639_1().String()), true, nil
}
