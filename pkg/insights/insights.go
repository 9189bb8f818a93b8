// Package insights derives human-readable statements from a message sequence.
package insights

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/chatlens/chatlens/pkg/parser"
	"github.com/chatlens/chatlens/pkg/words"
)

// Insight is one categorized, human-readable statement.
type Insight struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Value       interface{} `json:"value,omitempty"`
	Category    string      `json:"category"`
}

// Activity-level thresholds for the conversation style insight.
const (
	styleMinMessages  = 10
	moderateThreshold = 100
	highThreshold     = 1000
)

// Generate produces the full insight list for a conversation in the given
// language ("en" or "it"; anything else falls back to English). The output
// order is fixed: activity, authors, temporal, words, patterns.
func Generate(messages []parser.Message, language string) []Insight {
	tr := tableFor(language)

	user := make([]parser.Message, 0, len(messages))
	for _, m := range messages {
		if !m.IsSystem {
			user = append(user, m)
		}
	}

	var out []Insight
	out = append(out, activityInsights(user, tr)...)
	out = append(out, authorInsights(user, tr)...)
	out = append(out, temporalInsights(user, tr)...)
	out = append(out, wordInsights(user, tr)...)
	out = append(out, patternInsights(user, tr)...)
	return out
}

func activityInsights(user []parser.Message, tr phrases) []Insight {
	total := len(user)
	if total == 0 {
		return nil
	}

	out := []Insight{{
		Title:       tr.totalMessagesTitle,
		Description: fmt.Sprintf(tr.totalMessagesDesc, humanize.Comma(int64(total))),
		Value:       total,
		Category:    "activity",
	}}

	first, last := user[0].Timestamp, user[0].Timestamp
	for _, m := range user[1:] {
		if m.Timestamp.Before(first) {
			first = m.Timestamp
		}
		if m.Timestamp.After(last) {
			last = m.Timestamp
		}
	}
	days := int(last.Sub(first).Hours() / 24)
	out = append(out, Insight{
		Title: tr.durationTitle,
		Description: fmt.Sprintf(tr.durationDesc,
			days, first.Format(tr.dateLayout), last.Format(tr.dateLayout)),
		Value:    days,
		Category: "activity",
	})

	avgPerDay := float64(total)
	if days > 0 {
		avgPerDay = float64(total) / float64(days)
	}
	out = append(out, Insight{
		Title:       tr.avgActivityTitle,
		Description: fmt.Sprintf(tr.avgActivityDesc, avgPerDay),
		Value:       math.Round(avgPerDay*10) / 10,
		Category:    "activity",
	})

	return out
}

func authorInsights(user []parser.Message, tr phrases) []Insight {
	if len(user) == 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, m := range user {
		if counts[m.Author] == 0 {
			order = append(order, m.Author)
		}
		counts[m.Author]++
	}

	mostActive, best := order[0], 0
	for _, a := range order {
		if counts[a] > best {
			mostActive, best = a, counts[a]
		}
	}
	percentage := float64(best) / float64(len(user)) * 100

	out := []Insight{{
		Title: tr.mostActiveTitle,
		Description: fmt.Sprintf(tr.mostActiveDesc,
			mostActive, humanize.Comma(int64(best)), percentage),
		Value:    mostActive,
		Category: "authors",
	}}

	if len(order) > 1 {
		out = append(out, Insight{
			Title: tr.participationTitle,
			Description: fmt.Sprintf(tr.participationDesc,
				len(order), humanize.Comma(int64(best))),
			Value:    len(order),
			Category: "authors",
		})
	}
	return out
}

func temporalInsights(user []parser.Message, tr phrases) []Insight {
	if len(user) == 0 {
		return nil
	}

	var hourCounts [24]int
	var weekdayCounts [7]int // Monday first
	for _, m := range user {
		hourCounts[m.Timestamp.Hour()]++
		weekdayCounts[(int(m.Timestamp.Weekday())+6)%7]++
	}

	peakHour := 0
	for h, c := range hourCounts {
		if c > hourCounts[peakHour] {
			peakHour = h
		}
	}
	out := []Insight{{
		Title:       tr.peakHourTitle,
		Description: fmt.Sprintf(tr.peakHourDesc, peakHour, peakHour),
		Value:       peakHour,
		Category:    "temporal",
	}}

	peakDay := 0
	for d, c := range weekdayCounts {
		if c > weekdayCounts[peakDay] {
			peakDay = d
		}
	}
	out = append(out, Insight{
		Title:       tr.peakDayTitle,
		Description: fmt.Sprintf(tr.peakDayDesc, tr.weekdays[peakDay]),
		Value:       tr.weekdays[peakDay],
		Category:    "temporal",
	})

	if len(user) > 1 {
		// Coarse trend: compare message volume before and after the midpoint
		// of the covered time range.
		first, last := user[0].Timestamp, user[0].Timestamp
		for _, m := range user[1:] {
			if m.Timestamp.Before(first) {
				first = m.Timestamp
			}
			if m.Timestamp.After(last) {
				last = m.Timestamp
			}
		}
		mid := first.Add(last.Sub(first) / 2)
		firstHalf, secondHalf := 0, 0
		for _, m := range user {
			if m.Timestamp.Before(mid) {
				firstHalf++
			} else {
				secondHalf++
			}
		}
		trend := tr.trendStable
		switch {
		case float64(secondHalf) > float64(firstHalf)*1.2:
			trend = tr.trendIncreasing
		case float64(firstHalf) > float64(secondHalf)*1.2:
			trend = tr.trendDecreasing
		}
		out = append(out, Insight{
			Title:       tr.trendTitle,
			Description: fmt.Sprintf(tr.trendDesc, trend),
			Value:       trend,
			Category:    "temporal",
		})
	}

	return out
}

func wordInsights(user []parser.Message, tr phrases) []Insight {
	var out []Insight

	freq, err := words.Frequency(user, words.Options{Limit: 10, MinLength: 4})
	if err == nil && len(freq.Words) > 0 {
		top := freq.Words[0]
		out = append(out, Insight{
			Title:       tr.topWordTitle,
			Description: fmt.Sprintf(tr.topWordDesc, top.Word, top.Count),
			Value:       top.Word,
			Category:    "words",
		})
	}

	totalChars, counted := 0, 0
	for _, m := range user {
		if m.IsMedia || m.Content == "" {
			continue
		}
		totalChars += len([]rune(m.Content))
		counted++
	}
	if counted > 0 {
		avg := float64(totalChars) / float64(counted)
		out = append(out, Insight{
			Title:       tr.avgLengthTitle,
			Description: fmt.Sprintf(tr.avgLengthDesc, avg),
			Value:       math.Round(avg),
			Category:    "words",
		})
	}

	return out
}

func patternInsights(user []parser.Message, tr phrases) []Insight {
	if len(user) < 2 {
		return nil
	}

	var out []Insight
	mediaCount := 0
	for _, m := range user {
		if m.IsMedia {
			mediaCount++
		}
	}
	if mediaCount > 0 {
		percentage := float64(mediaCount) / float64(len(user)) * 100
		out = append(out, Insight{
			Title: tr.mediaTitle,
			Description: fmt.Sprintf(tr.mediaDesc,
				humanize.Comma(int64(mediaCount)), percentage),
			Value:    mediaCount,
			Category: "patterns",
		})
	}

	if total := len(user); total > styleMinMessages {
		activity := tr.lightlyActive
		switch {
		case total > highThreshold:
			activity = tr.highlyActive
		case total > moderateThreshold:
			activity = tr.moderatelyActive
		}
		out = append(out, Insight{
			Title: tr.styleTitle,
			Description: fmt.Sprintf(tr.styleDesc,
				humanize.Comma(int64(total)), activity),
			Value:    total,
			Category: "patterns",
		})
	}

	return out
}
