package models

// FrequenciesReport is printed to stdout as YAML after a successful
// create-frequencies run.
type FrequenciesReport struct {
	RunID            string  `yaml:"run_id"`
	InputDir         string  `yaml:"input_dir"`
	Language         string  `yaml:"language"`
	DetectedLanguage string  `yaml:"detected_language,omitempty"`
	ShardCount       int     `yaml:"shard_count"`
	Workers          int     `yaml:"workers"`
	TotalUnigrams    uint64  `yaml:"total_unigrams"`
	UniqueUnigrams   int     `yaml:"unique_unigrams"`
	UniqueBigrams    int     `yaml:"unique_bigrams"`
	OutputPath       string  `yaml:"output_path"`
	DurationSeconds  float64 `yaml:"duration_seconds"`
}

// SplitReport is printed to stdout as YAML after a successful split run.
type SplitReport struct {
	RunID           string  `yaml:"run_id"`
	InputPath       string  `yaml:"input_path"`
	OutputDir       string  `yaml:"output_dir"`
	Pieces          int     `yaml:"pieces"`
	Articles        int     `yaml:"articles"`
	DurationSeconds float64 `yaml:"duration_seconds"`
}

// TopKReport is printed to stdout as YAML after a successful top-k-words
// run.
type TopKReport struct {
	RunID           string  `yaml:"run_id"`
	InputFile       string  `yaml:"input_file"`
	OutputFile      string  `yaml:"output_file"`
	WordsWritten    int     `yaml:"words_written"`
	DurationSeconds float64 `yaml:"duration_seconds"`
}

// RunSummary is one row of `wordfreq runs` output.
type RunSummary struct {
	RunID          string `yaml:"run_id"`
	Command        string `yaml:"command"`
	InputDir       string `yaml:"input_dir"`
	Language       string `yaml:"language,omitempty"`
	ShardCount     int    `yaml:"shard_count,omitempty"`
	TotalUnigrams  uint64 `yaml:"total_unigrams,omitempty"`
	UniqueUnigrams int    `yaml:"unique_unigrams,omitempty"`
	UniqueBigrams  int    `yaml:"unique_bigrams,omitempty"`
	OutputPath     string `yaml:"output_path,omitempty"`
	DurationMS     int64  `yaml:"duration_ms"`
	CreatedAt      string `yaml:"created_at"`
}
