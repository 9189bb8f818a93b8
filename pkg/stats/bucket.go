package stats

import (
	"sort"
	"time"

	"github.com/chatlens/chatlens/pkg/parser"
)

// bucketKey truncates a timestamp to the bucket's resolution. Week buckets
// start on Monday.
func bucketKey(t time.Time, b Bucket) time.Time {
	switch b {
	case BucketHour:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	case BucketDay:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	case BucketWeek:
		daysSinceMonday := (int(t.Weekday()) + 6) % 7
		start := t.AddDate(0, 0, -daysSinceMonday)
		return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, t.Location())
	case BucketMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	}
}

// timeSeries counts messages per bucket key, emitting only keys present in
// the data, sorted ascending.
func timeSeries(messages []parser.Message, b Bucket) []TimeSeriesPoint {
	counts := make(map[time.Time]int)
	for _, m := range messages {
		counts[bucketKey(m.Timestamp, b)]++
	}
	return sortedSeries(counts)
}

func sortedSeries(counts map[time.Time]int) []TimeSeriesPoint {
	series := make([]TimeSeriesPoint, 0, len(counts))
	for ts, v := range counts {
		series = append(series, TimeSeriesPoint{Timestamp: ts, Value: v})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Timestamp.Before(series[j].Timestamp)
	})
	return series
}

// hourlyBreakdown counts messages per hour of day. All 24 hours are emitted,
// zero-filled, anchored on an arbitrary reference date.
func hourlyBreakdown(messages []parser.Message) []TimeSeriesPoint {
	var counts [24]int
	for _, m := range messages {
		counts[m.Timestamp.Hour()]++
	}

	reference := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	series := make([]TimeSeriesPoint, 24)
	for hour := 0; hour < 24; hour++ {
		series[hour] = TimeSeriesPoint{
			Timestamp: reference.Add(time.Duration(hour) * time.Hour),
			Value:     counts[hour],
		}
	}
	return series
}
