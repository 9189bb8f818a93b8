// Package emoji counts emoji usage across a message sequence.
package emoji

import (
	"math"
	"sort"

	"github.com/chatlens/chatlens/pkg/parser"
)

// Result limits.
const (
	topOverallLimit   = 30
	topPerAuthorLimit = 10
)

// Count pairs an emoji with its occurrence count.
type Count struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// AuthorUsage summarizes one author's emoji usage.
type AuthorUsage struct {
	Author     string  `json:"author"`
	Total      int     `json:"total"`
	Unique     int     `json:"unique"`
	TopEmojis  []Count `json:"top_emojis"`
	PerMessage float64 `json:"per_message"`
}

// Usage is the full analysis output.
type Usage struct {
	TotalEmojis      int           `json:"total_emojis"`
	UniqueEmojis     int           `json:"unique_emojis"`
	TopEmojis        []Count       `json:"top_emojis"`
	ByAuthor         []AuthorUsage `json:"by_author"`
	EmojisPerMessage float64       `json:"emojis_per_message"`
}

// Analyze counts emoji across non-system, non-media messages. Authors are
// sorted by total emoji count descending.
func Analyze(messages []parser.Message) *Usage {
	usage := &Usage{TopEmojis: []Count{}, ByAuthor: []AuthorUsage{}}

	totalCounts := make(map[string]int)
	authorCounts := make(map[string]map[string]int)
	authorTotals := make(map[string]int)
	authorMessages := make(map[string]int)
	var authorOrder []string

	userMessages := 0
	for _, m := range messages {
		if m.IsSystem || m.IsMedia {
			continue
		}
		userMessages++
		if authorCounts[m.Author] == nil {
			authorCounts[m.Author] = make(map[string]int)
			authorOrder = append(authorOrder, m.Author)
		}
		authorMessages[m.Author]++

		for _, e := range extract(m.Content) {
			totalCounts[e]++
			authorCounts[m.Author][e]++
			authorTotals[m.Author]++
			usage.TotalEmojis++
		}
	}

	if userMessages == 0 {
		return usage
	}

	usage.UniqueEmojis = len(totalCounts)
	usage.TopEmojis = topCounts(totalCounts, topOverallLimit)
	usage.EmojisPerMessage = round2(float64(usage.TotalEmojis) / float64(userMessages))

	for _, author := range authorOrder {
		if authorTotals[author] == 0 {
			continue
		}
		usage.ByAuthor = append(usage.ByAuthor, AuthorUsage{
			Author:     author,
			Total:      authorTotals[author],
			Unique:     len(authorCounts[author]),
			TopEmojis:  topCounts(authorCounts[author], topPerAuthorLimit),
			PerMessage: round2(float64(authorTotals[author]) / float64(authorMessages[author])),
		})
	}
	sort.SliceStable(usage.ByAuthor, func(i, j int) bool {
		return usage.ByAuthor[i].Total > usage.ByAuthor[j].Total
	})

	return usage
}

// extract returns the emoji in a string. Variation selectors and zero-width
// joiners glue onto the preceding emoji so compound sequences (skin tones,
// family ZWJ runs) count once.
func extract(text string) []string {
	var out []string
	current := make([]rune, 0, 8)
	joined := false

	flush := func() {
		if len(current) > 0 {
			out = append(out, string(current))
			current = current[:0]
		}
	}

	for _, r := range text {
		switch {
		case isEmojiRune(r):
			if !joined {
				flush()
			}
			current = append(current, r)
			joined = false
		case len(current) > 0 && (r == 0xFE0F || r == 0x200D || isSkinTone(r)):
			current = append(current, r)
			joined = r == 0x200D
		default:
			flush()
			joined = false
		}
	}
	flush()
	return out
}

func isEmojiRune(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1F5FF: // symbols & pictographs
		return true
	case r >= 0x1F600 && r <= 0x1F64F: // emoticons
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // transport
		return true
	case r >= 0x1F900 && r <= 0x1F9FF: // supplemental symbols
		return true
	case r >= 0x1FA70 && r <= 0x1FAFF: // extended-A
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
		return true
	case r >= 0x2600 && r <= 0x26FF: // miscellaneous symbols
		return true
	case r >= 0x2700 && r <= 0x27BF: // dingbats
		return true
	}
	return false
}

func isSkinTone(r rune) bool {
	return r >= 0x1F3FB && r <= 0x1F3FF
}

func topCounts(counts map[string]int, limit int) []Count {
	out := make([]Count, 0, len(counts))
	for e, c := range counts {
		out = append(out, Count{Emoji: e, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Emoji < out[j].Emoji
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
