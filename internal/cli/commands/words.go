package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/pkg/parser"
	"github.com/chatlens/chatlens/pkg/words"
)

// WordsOptions holds command-line options for the words command.
type WordsOptions struct {
	Output    string
	Limit     int
	MinLength int
	Preamble  int
}

// NewWordsCommand creates the words command.
func NewWordsCommand() *cobra.Command {
	opts := &WordsOptions{}

	cmd := &cobra.Command{
		Use:   "words <transcript-file>...",
		Short: "Rank word frequency in transcripts",
		Long: `Tokenize transcript messages and rank words by frequency.

URLs, email addresses, stopwords and short tokens are excluded.

Example:
  chatlens words chat.txt
  chatlens words --limit 50 --min-length 5 chat.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWords(args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVar(&opts.Limit, "limit", words.DefaultLimit, "Maximum number of ranked words")
	cmd.Flags().IntVar(&opts.MinLength, "min-length", 3, "Minimum word length")
	cmd.Flags().IntVar(&opts.Preamble, "preamble-lines", -1, "Leading lines to skip before parsing")

	return cmd
}

func runWords(args []string, opts *WordsOptions) error {
	files, err := parser.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding transcript paths: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no transcript files matched: %v", args)
	}

	messages, err := loadTranscripts(files, opts.Preamble)
	if err != nil {
		return err
	}

	result, err := words.Frequency(messages, words.Options{Limit: opts.Limit, MinLength: opts.MinLength})
	if err != nil {
		return err
	}

	switch opts.Output {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case "text":
		fmt.Printf("Words: %d total, %d unique\n\n", result.TotalWords, result.UniqueWords)
		for _, t := range result.Words {
			fmt.Printf("%-24s %6d  %.2f%%\n", t.Word, t.Count, t.Frequency)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}
