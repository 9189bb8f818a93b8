// Package stats computes aggregate statistics, time series, and lexical
// pattern metrics over a parsed message sequence.
package stats

import (
	"fmt"
	"time"
)

// Bucket enumerates the supported time-bucket granularities.
type Bucket string

const (
	BucketHour  Bucket = "hour"
	BucketDay   Bucket = "day"
	BucketWeek  Bucket = "week"
	BucketMonth Bucket = "month"
)

// ParseBucket validates a caller-supplied bucket granularity.
func ParseBucket(s string) (Bucket, error) {
	switch Bucket(s) {
	case BucketHour, BucketDay, BucketWeek, BucketMonth:
		return Bucket(s), nil
	default:
		return "", fmt.Errorf("time_group: invalid value %q (must be hour, day, week, or month)", s)
	}
}

// TimeSeriesPoint is one bucketed data point.
type TimeSeriesPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     int       `json:"value"`
}

// AuthorStats summarizes one author's activity.
type AuthorStats struct {
	Author           string  `json:"author"`
	MessageCount     int     `json:"message_count"`
	AvgMessageLength float64 `json:"avg_message_length"`
	TotalChars       int     `json:"total_chars"`
	MediaCount       int     `json:"media_count"`
}

// MediaStats summarizes media placeholder messages.
type MediaStats struct {
	TotalMedia      int               `json:"total_media"`
	MediaPercentage float64           `json:"media_percentage"`
	MediaByAuthor   map[string]int    `json:"media_by_author"`
	MediaOverTime   []TimeSeriesPoint `json:"media_over_time"`
}

// DateRange is the inclusive timestamp span of the aggregated messages.
type DateRange struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

// Result is the complete aggregation output. All fields are value objects
// computed fresh per query and never mutated after construction.
type Result struct {
	TotalMessages int       `json:"total_messages"`
	TotalAuthors  int       `json:"total_authors"`
	DateRange     DateRange `json:"date_range"`

	AuthorStats []AuthorStats `json:"author_stats"`
	MediaStats  *MediaStats   `json:"media_stats,omitempty"`
	TimeSeries  []TimeSeriesPoint `json:"time_series"`

	// ByAuthor and BySentiment are optional sub-series using the same
	// bucketing function.
	ByAuthor    map[string][]TimeSeriesPoint `json:"by_author,omitempty"`
	BySentiment map[string][]TimeSeriesPoint `json:"by_sentiment,omitempty"`

	// Hourly is the fixed 24-hour-of-day breakdown, emitted only for the
	// day bucket. All 24 hours are present, zero-filled.
	Hourly []TimeSeriesPoint `json:"hourly,omitempty"`

	// MessageLengths is the raw length list for histogramming, media
	// messages excluded.
	MessageLengths []int `json:"message_lengths"`

	Profanity *ProfanityStats `json:"profanity,omitempty"`
}

// Options controls optional aggregation outputs.
type Options struct {
	GroupByAuthor    bool
	GroupBySentiment bool

	// Patterns is the lexical pattern set for the profanity meter. Nil
	// selects the built-in fallback for LanguageTag.
	Patterns *PatternSet

	// LanguageTag selects fallback patterns when Patterns is nil.
	LanguageTag string
}

// PhraseCount pairs a canonical phrase with its total match count.
type PhraseCount struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}

// Streak is a maximal run of consecutive pattern-matching messages by one
// author. Only streaks of length >= 2 are reported.
type Streak struct {
	Author         string    `json:"author"`
	Count          int       `json:"count"`
	StartTimestamp time.Time `json:"timestamp"`
}

// Climax is a detected emphatic word form: a known stem followed by a
// repeated trailing vowel.
type Climax struct {
	Author      string    `json:"author"`
	Timestamp   time.Time `json:"timestamp"`
	Text        string    `json:"text"`
	Intensity   int       `json:"intensity"`
	Repetitions int       `json:"repetitions"`
}

// ProfanityStats is the lexical-pattern meter output.
type ProfanityStats struct {
	ByPhrase      []PhraseCount             `json:"by_phrase"`
	ByAuthor      map[string]map[string]int `json:"by_author"`
	ByAuthorTotal map[string]int            `json:"by_author_total"`
	Total         int                       `json:"total"`

	// PerCapita is matches per 100 messages for each author, rounded to
	// two decimals.
	PerCapita      map[string]float64 `json:"per_capita"`
	TotalPerCapita float64            `json:"total_per_capita"`

	Streaks            []Streak          `json:"consecutive_streaks"`
	ClimaxInstances    []Climax          `json:"climax_instances"`
	ClimaxByAuthor     map[string]int    `json:"climax_by_author"`
	AvgClimaxIntensity float64           `json:"avg_climax_intensity"`
	Timeline           []TimeSeriesPoint `json:"timeline"`
	Language           string            `json:"language"`
}
