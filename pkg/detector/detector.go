// Package detector provides automatic header-shape and language detection
// for chat transcript files.
package detector

import (
	"bufio"
	"context"
	"os"
	"sort"
	"strings"
)

// DetectionResult holds the result of analyzing a transcript file.
type DetectionResult struct {
	Matches      []FormatMatch // Formats that matched, sorted by confidence descending
	SampledLines int           // Number of lines sampled
	HeaderLines  int           // Number of lines with a detected header
	Language     string        // Detected content language ("en" or "it")
	LanguageHits int           // Number of language cue hits behind the detection
}

// FormatMatch represents a header shape that matched with its confidence score.
type FormatMatch struct {
	Format     *HeaderFormat
	Confidence float64 // 0.0 to 1.0 (percentage of lines matched)
	MatchCount int     // Number of lines that matched
	SampleLine string  // Example line that matched
}

// Detector analyzes transcript files to identify their header shape and language.
type Detector struct {
	formats    []*HeaderFormat
	sampleSize int
}

// Option configures the Detector.
type Option func(*Detector)

// WithSampleSize sets the number of lines to sample (default 100).
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// New creates a new Detector with default formats.
func New(opts ...Option) *Detector {
	d := &Detector{
		formats:    DefaultFormats(),
		sampleSize: 100,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectFromFile analyzes a transcript file and returns detected formats.
func (d *Detector) DetectFromFile(ctx context.Context, path string) (*DetectionResult, error) {
	lines, err := d.sampleFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return d.DetectFromLines(lines), nil
}

// DetectFromLines analyzes a slice of transcript lines.
func (d *Detector) DetectFromLines(lines []string) *DetectionResult {
	result := &DetectionResult{
		SampledLines: len(lines),
		Language:     "en",
	}

	if len(lines) == 0 {
		return result
	}

	type formatStats struct {
		format     *HeaderFormat
		matchCount int
		sampleLine string
	}

	stats := make(map[string]*formatStats)
	var itHits, enHits int

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		for _, format := range d.formats {
			if !format.Pattern.MatchString(line) {
				continue
			}
			key := format.Name
			if stats[key] == nil {
				stats[key] = &formatStats{
					format:     format,
					sampleLine: line,
				}
			}
			stats[key].matchCount++
			break
		}

		lower := strings.ToLower(line)
		for _, cue := range italianCues {
			if strings.Contains(lower, cue) {
				itHits++
				break
			}
		}
		for _, cue := range englishCues {
			if strings.Contains(lower, cue) {
				enHits++
				break
			}
		}
	}

	for _, s := range stats {
		result.Matches = append(result.Matches, FormatMatch{
			Format:     s.format,
			Confidence: float64(s.matchCount) / float64(len(lines)),
			MatchCount: s.matchCount,
			SampleLine: s.sampleLine,
		})
	}

	// Sort by confidence descending, then by pattern length (more specific first)
	sort.Slice(result.Matches, func(i, j int) bool {
		if result.Matches[i].Confidence != result.Matches[j].Confidence {
			return result.Matches[i].Confidence > result.Matches[j].Confidence
		}
		return len(result.Matches[i].Format.PatternStr) > len(result.Matches[j].Format.PatternStr)
	})

	if len(result.Matches) > 0 {
		result.HeaderLines = result.Matches[0].MatchCount
	}

	if itHits > enHits {
		result.Language = "it"
		result.LanguageHits = itHits
	} else {
		result.LanguageHits = enHits
	}

	return result
}

// sampleFile reads up to sampleSize non-empty lines from a file.
// Uses simple head sampling for efficiency.
func (d *Detector) sampleFile(_ context.Context, path string) ([]string, error) {
	// #nosec G304 - path is provided by user via CLI
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() && len(lines) < d.sampleSize {
		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// BestMatch returns the highest confidence match, or nil if none found.
func (r *DetectionResult) BestMatch() *FormatMatch {
	if len(r.Matches) == 0 {
		return nil
	}
	return &r.Matches[0]
}

// HasMatch returns true if at least one header shape matched.
func (r *DetectionResult) HasMatch() bool {
	return len(r.Matches) > 0
}
