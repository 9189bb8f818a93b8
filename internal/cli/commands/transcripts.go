package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/chatlens/chatlens/pkg/detector"
	"github.com/chatlens/chatlens/pkg/parser"
)

// loadTranscripts reads and parses each file, then merges the parsed
// sequences into a single chronological stream.
func loadTranscripts(files []string, preambleLines int) ([]parser.Message, error) {
	sequences := make([][]parser.Message, 0, len(files))

	for _, file := range files {
		data, err := os.ReadFile(file) // #nosec G304 -- user-provided transcript path is expected
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}

		messages, err := parser.Parse(string(data), parser.Options{PreambleLines: preambleLines})
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", file, err)
		}
		sequences = append(sequences, messages)
	}

	if len(sequences) == 1 {
		return sequences[0], nil
	}
	return parser.MergeChronological(sequences...), nil
}

// detectLanguage samples the first file to pick a content language.
func detectLanguage(files []string) string {
	if len(files) == 0 {
		return "en"
	}
	result, err := detector.New().DetectFromFile(context.Background(), files[0])
	if err != nil {
		return "en"
	}
	return result.Language
}
