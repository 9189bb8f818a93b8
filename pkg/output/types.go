// Package output provides formatting and output generation for transcript reports.
package output

import (
	"time"

	"github.com/chatlens/chatlens/pkg/emoji"
	"github.com/chatlens/chatlens/pkg/insights"
	"github.com/chatlens/chatlens/pkg/stats"
	"github.com/chatlens/chatlens/pkg/words"
)

// Report is the complete analysis output for one or more transcripts.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Stats holds message statistics and time series.
	Stats *stats.Result `json:"stats,omitempty"`

	// Insights holds generated natural-language insights.
	Insights []insights.Insight `json:"insights,omitempty"`

	// Words holds the word frequency breakdown.
	Words *words.Result `json:"words,omitempty"`

	// Emoji holds the emoji usage breakdown.
	Emoji *emoji.Usage `json:"emoji,omitempty"`

	// Metadata provides context about the analysis.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// TotalMessages is the number of messages analyzed.
	TotalMessages int `json:"total_messages"`

	// TotalAuthors is the number of distinct authors.
	TotalAuthors int `json:"total_authors"`

	// MediaMessages is the number of media placeholder messages.
	MediaMessages int `json:"media_messages"`

	// ProfanityMatches is the total number of tracked phrase matches.
	ProfanityMatches int `json:"profanity_matches"`
}

// Metadata provides context about the analysis run.
type Metadata struct {
	// Sources lists the transcript files that were analyzed.
	Sources []string `json:"sources"`

	// Language is the content language used for pattern matching.
	Language string `json:"language"`

	// TimeRange is the time filter that was applied, if any.
	TimeRange *TimeRange `json:"time_range,omitempty"`

	// AnalyzedAt is when the analysis was performed.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Duration is how long the analysis took.
	Duration time.Duration `json:"duration"`
}

// TimeRange represents a time window for filtering.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewReport assembles a Report from the individual analysis results.
func NewReport(result *stats.Result, language string, sources []string, startedAt time.Time) *Report {
	report := &Report{
		Stats: result,
		Metadata: Metadata{
			Sources:    sources,
			Language:   language,
			AnalyzedAt: time.Now().UTC(),
		},
	}
	report.Metadata.Duration = report.Metadata.AnalyzedAt.Sub(startedAt)

	if result != nil {
		report.Summary.TotalMessages = result.TotalMessages
		report.Summary.TotalAuthors = result.TotalAuthors
		if result.MediaStats != nil {
			report.Summary.MediaMessages = result.MediaStats.TotalMedia
		}
		if result.Profanity != nil {
			report.Summary.ProfanityMatches = result.Profanity.Total
		}
	}

	return report
}

// HasMessages returns true if any messages were analyzed.
func (r *Report) HasMessages() bool {
	return r.Summary.TotalMessages > 0
}
