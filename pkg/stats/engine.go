package stats

import (
	"sort"
	"time"

	"github.com/chatlens/chatlens/pkg/parser"
)

// Aggregate computes the full statistics result over a message sequence.
// System events are excluded from every statistic. An empty (or all-system)
// sequence yields an empty Result, not an error; callers that need to
// distinguish "no data" do so before aggregating.
func Aggregate(messages []parser.Message, bucket Bucket, opts Options) *Result {
	user := make([]parser.Message, 0, len(messages))
	for _, m := range messages {
		if !m.IsSystem {
			user = append(user, m)
		}
	}

	if len(user) == 0 {
		return &Result{
			AuthorStats:    []AuthorStats{},
			TimeSeries:     []TimeSeriesPoint{},
			MessageLengths: []int{},
		}
	}

	result := &Result{
		TotalMessages: len(user),
		AuthorStats:   authorStats(user),
		MediaStats:    mediaStats(user, bucket),
		TimeSeries:    timeSeries(user, bucket),
	}
	result.TotalAuthors = len(result.AuthorStats)
	result.DateRange = dateRange(user)

	if bucket == BucketDay {
		result.Hourly = hourlyBreakdown(user)
	}
	if opts.GroupByAuthor {
		result.ByAuthor = groupSeries(user, bucket, func(m parser.Message) string { return m.Author })
	}
	if opts.GroupBySentiment {
		result.BySentiment = groupSeries(user, bucket, func(m parser.Message) string { return m.Sentiment })
	}

	result.MessageLengths = messageLengths(user)

	patterns := opts.Patterns
	if patterns == nil {
		patterns = FallbackPatterns(opts.LanguageTag)
	}
	meter := NewMeter(patterns)
	for _, m := range user {
		meter.Process(m)
	}
	result.Profanity = meter.Finalize()

	return result
}

func dateRange(messages []parser.Message) DateRange {
	min, max := messages[0].Timestamp, messages[0].Timestamp
	for _, m := range messages[1:] {
		if m.Timestamp.Before(min) {
			min = m.Timestamp
		}
		if m.Timestamp.After(max) {
			max = m.Timestamp
		}
	}
	return DateRange{Start: &min, End: &max}
}

// authorStats aggregates per-author counters, sorted descending by message
// count. Ties keep first-appearance order (stable sort).
func authorStats(messages []parser.Message) []AuthorStats {
	index := make(map[string]int)
	var stats []AuthorStats
	totalChars := make([]int, 0)
	nonEmpty := make([]int, 0)

	for _, m := range messages {
		i, ok := index[m.Author]
		if !ok {
			i = len(stats)
			index[m.Author] = i
			stats = append(stats, AuthorStats{Author: m.Author})
			totalChars = append(totalChars, 0)
			nonEmpty = append(nonEmpty, 0)
		}
		stats[i].MessageCount++
		if m.IsMedia {
			stats[i].MediaCount++
		}
		if m.Content != "" {
			totalChars[i] += len([]rune(m.Content))
			nonEmpty[i]++
		}
	}

	for i := range stats {
		stats[i].TotalChars = totalChars[i]
		if nonEmpty[i] > 0 {
			stats[i].AvgMessageLength = float64(totalChars[i]) / float64(nonEmpty[i])
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].MessageCount > stats[j].MessageCount
	})
	return stats
}

func mediaStats(messages []parser.Message, bucket Bucket) *MediaStats {
	byAuthor := make(map[string]int)
	var media []parser.Message
	for _, m := range messages {
		if m.IsMedia {
			byAuthor[m.Author]++
			media = append(media, m)
		}
	}

	percentage := 0.0
	if len(messages) > 0 {
		percentage = float64(len(media)) / float64(len(messages)) * 100
	}

	return &MediaStats{
		TotalMedia:      len(media),
		MediaPercentage: percentage,
		MediaByAuthor:   byAuthor,
		MediaOverTime:   timeSeries(media, bucket),
	}
}

// groupSeries buckets messages into per-key sub-series using the same
// bucketing function as the main time series.
func groupSeries(messages []parser.Message, bucket Bucket, keyFn func(parser.Message) string) map[string][]TimeSeriesPoint {
	grouped := make(map[string]map[time.Time]int)
	for _, m := range messages {
		key := keyFn(m)
		if grouped[key] == nil {
			grouped[key] = make(map[time.Time]int)
		}
		grouped[key][bucketKey(m.Timestamp, bucket)]++
	}

	result := make(map[string][]TimeSeriesPoint, len(grouped))
	for key, counts := range grouped {
		result[key] = sortedSeries(counts)
	}
	return result
}

// messageLengths returns raw content lengths for histogramming, excluding
// media and empty messages.
func messageLengths(messages []parser.Message) []int {
	lengths := make([]int, 0, len(messages))
	for _, m := range messages {
		if m.IsMedia || m.Content == "" {
			continue
		}
		lengths = append(lengths, len([]rune(m.Content)))
	}
	return lengths
}
