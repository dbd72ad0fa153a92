// wordfreq builds word frequency statistics from Wikipedia dataset dumps:
// split a cirrussearch dump into shards, count n-grams across them
// concurrently, and extract top-K word lists from the result.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/corpustools/wordfreq/internal/freq"
	"github.com/corpustools/wordfreq/internal/runs"
	"github.com/corpustools/wordfreq/internal/split"
	"github.com/corpustools/wordfreq/internal/topk"
	"github.com/corpustools/wordfreq/pkg/ngram"
)

func main() {
	app := &cli.App{
		Name:  "wordfreq",
		Usage: "Word frequency counter using Wikipedia dataset dumps",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "Only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "split",
				Usage:  "Split a cirrussearch JSON GZ file into pieces",
				Action: split.SplitAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input-path",
						Aliases:  []string{"p"},
						Required: true,
						Usage:    "Path to cirrussearch JSON GZ file, download from https://dumps.wikimedia.org/other/cirrussearch/",
					},
					&cli.StringFlag{
						Name:     "output-dir",
						Aliases:  []string{"o"},
						Required: true,
						Usage:    "Output directory for split files. Will be deleted if exists.",
					},
					&cli.IntFlag{
						Name:    "pieces",
						Aliases: []string{"s"},
						Value:   12,
						Usage:   "How many pieces to split the input file into.",
					},
				},
			},
			{
				Name:   "create-frequencies",
				Usage:  "Create a frequencies file from line-delimited files of articles",
				Action: freq.CreateFrequenciesAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input-dir",
						Aliases:  []string{"d"},
						Required: true,
						Usage:    "Directory full of line-delimited GZ files. Will put output frequency file here.",
					},
					&cli.StringFlag{
						Name:     "output-file",
						Aliases:  []string{"o"},
						Required: true,
						Usage:    "Name of output frequency file. Will be GZIP compressed and have .gz appended.",
					},
					&cli.StringFlag{
						Name:     "language",
						Aliases:  []string{"l"},
						Required: true,
						Usage:    "Two-character language code for dictionary, e.g. en, pl, etc.",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Worker pool size. Defaults to available cores minus one.",
					},
					&cli.Uint64Flag{
						Name:  "article-threshold",
						Value: ngram.DefaultArticleThreshold,
						Usage: "Minimum number of articles a word must appear in to be included.",
					},
					&cli.BoolFlag{
						Name:  "skip-language-check",
						Usage: "Skip sampling shard text to verify the dictionary language.",
					},
				},
			},
			{
				Name:   "top-k-words",
				Usage:  "Create a file with the top K words (unigrams) in a frequencies file",
				Action: topk.TopKWordsAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input-file",
						Aliases:  []string{"f"},
						Required: true,
						Usage:    "GZIP-compressed frequencies file as produced by the 'create-frequencies' sub-command",
					},
					&cli.StringFlag{
						Name:     "output-file",
						Aliases:  []string{"o"},
						Required: true,
						Usage:    "Name of output file to put top K words. Will not be compressed.",
					},
					&cli.IntFlag{
						Name:    "number-of-words",
						Aliases: []string{"k"},
						Value:   10000,
						Usage:   "Number of words to return, starting with most frequent.",
					},
					&cli.IntFlag{
						Name:    "minimum-word-length",
						Aliases: []string{"m"},
						Value:   3,
						Usage:   "Minimum (inclusive) length of word to consider.",
					},
				},
			},
			{
				Name:   "runs",
				Usage:  "List recorded runs from the local history database",
				Action: runs.RunsAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "Maximum number of runs to list. 0 lists all.",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
