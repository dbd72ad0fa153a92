// Package models defines configuration and report structures shared by the
// CLI commands.
package models

// FrequenciesConfig holds runtime configuration for a create-frequencies
// run. All values come from CLI flags, not external config files.
type FrequenciesConfig struct {
	InputDir      string
	OutputFile    string
	Language      string
	Workers       int
	Threshold     uint64
	SkipLangCheck bool
}

// SplitConfig holds runtime configuration for a split run.
type SplitConfig struct {
	InputPath string
	OutputDir string
	Pieces    int
}

// TopKConfig holds runtime configuration for a top-k-words run.
type TopKConfig struct {
	InputFile         string
	OutputFile        string
	MinimumWordLength int
	NumberOfWords     int
}
