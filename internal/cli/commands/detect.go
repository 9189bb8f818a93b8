package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/pkg/detector"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	Output     string
	SampleSize int
	ShowAll    bool
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect <transcript-file>",
		Short: "Detect header shape and language of a transcript",
		Long: `Analyze a transcript file to detect its message header shape and
content language.

Samples lines from the file and tests against the known header shapes
(dash-separated and bracketed timestamps), then scores language cues
such as media placeholders and system notices.

Example:
  chatlens detect chat.txt
  chatlens detect --sample 500 export.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVarP(&opts.SampleSize, "sample", "n", 100, "Number of lines to sample")
	cmd.Flags().BoolVar(&opts.ShowAll, "all", false, "Show all detected shapes, not just the best match")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *DetectOptions) error {
	file := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := os.Stat(file); os.IsNotExist(err) {
		return fmt.Errorf("transcript file not found: %s", file)
	}

	d := detector.New(detector.WithSampleSize(opts.SampleSize))

	result, err := d.DetectFromFile(ctx, file)
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	switch opts.Output {
	case "json":
		return outputDetectJSON(result, file, opts)
	default:
		return outputDetectText(result, file, opts)
	}
}

func outputDetectText(result *detector.DetectionResult, file string, opts *DetectOptions) error {
	fmt.Println("=== Transcript Detection ===")
	fmt.Println()
	fmt.Printf("File: %s\n", file)
	fmt.Printf("Lines sampled: %d\n", result.SampledLines)
	fmt.Printf("Lines with headers: %d\n", result.HeaderLines)
	fmt.Printf("Language: %s (%d cue hits)\n", result.Language, result.LanguageHits)
	fmt.Println()

	if !result.HasMatch() {
		fmt.Println("No header shape detected.")
		fmt.Println()
		fmt.Println("Tip: The file may not be a transcript export, or may use an")
		fmt.Println("uncommon header shape. Check the first few lines manually.")
		return nil
	}

	best := result.BestMatch()
	fmt.Printf("Detected Shape: %s\n", best.Format.Name)
	fmt.Printf("Confidence: %.1f%% (%d/%d lines matched)\n",
		best.Confidence*100, best.MatchCount, result.SampledLines)
	fmt.Println()
	fmt.Printf("Sample match:\n  %s\n", best.SampleLine)

	if opts.ShowAll && len(result.Matches) > 1 {
		fmt.Println()
		fmt.Println("All matches:")
		for _, m := range result.Matches {
			fmt.Printf("  %-20s %.1f%% (%d lines)\n", m.Format.Name, m.Confidence*100, m.MatchCount)
		}
	}

	return nil
}

func outputDetectJSON(result *detector.DetectionResult, file string, opts *DetectOptions) error {
	type matchJSON struct {
		Name       string  `json:"name"`
		Pattern    string  `json:"pattern"`
		Confidence float64 `json:"confidence"`
		MatchCount int     `json:"match_count"`
		SampleLine string  `json:"sample_line"`
	}

	payload := struct {
		File         string      `json:"file"`
		SampledLines int         `json:"sampled_lines"`
		HeaderLines  int         `json:"header_lines"`
		Language     string      `json:"language"`
		Matches      []matchJSON `json:"matches"`
	}{
		File:         file,
		SampledLines: result.SampledLines,
		HeaderLines:  result.HeaderLines,
		Language:     result.Language,
	}

	matches := result.Matches
	if !opts.ShowAll && len(matches) > 1 {
		matches = matches[:1]
	}
	for _, m := range matches {
		payload.Matches = append(payload.Matches, matchJSON{
			Name:       m.Format.Name,
			Pattern:    m.Format.PatternStr,
			Confidence: m.Confidence,
			MatchCount: m.MatchCount,
			SampleLine: m.SampleLine,
		})
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
