package stats

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/chatlens/chatlens/pkg/parser"
)

// Result limits for the meter output.
const (
	topPhraseLimit = 20
	topStreakLimit = 10
	climaxLimit    = 50
	maxIntensity   = 5
)

// climaxStems is the fixed vocabulary of word stems checked for emphatic
// trailing-vowel repetition.
var climaxStems = []string{"dio", "porco", "madonna", "cane", "merda", "bestia", "boia", "maiale"}

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// streakState is the streak tracker state: idle, or inside a run of
// consecutive matching messages from one author.
type streakState int

const (
	streakIdle streakState = iota
	streakActive
)

// Meter accumulates lexical pattern statistics over a message sequence.
// Feed messages in order with Process, then call Finalize exactly once.
type Meter struct {
	patterns *PatternSet

	byPhrase      map[string]int
	byAuthor      map[string]map[string]int
	byAuthorTotal map[string]int
	messageCounts map[string]int
	total         int

	timeline map[time.Time]int

	state         streakState
	streakAuthor  string
	streakCount   int
	streakStart   time.Time
	closedStreaks []Streak

	climaxes []Climax
}

// NewMeter creates a meter for the given pattern set.
func NewMeter(patterns *PatternSet) *Meter {
	return &Meter{
		patterns:      patterns,
		byPhrase:      make(map[string]int),
		byAuthor:      make(map[string]map[string]int),
		byAuthorTotal: make(map[string]int),
		messageCounts: make(map[string]int),
		timeline:      make(map[time.Time]int),
	}
}

// Process handles one message, updating counters and the streak tracker.
// System events are ignored entirely; media and empty messages count toward
// the author's message total but break any open streak.
func (m *Meter) Process(msg parser.Message) {
	if msg.IsSystem {
		return
	}
	m.messageCounts[msg.Author]++

	if msg.IsMedia || msg.Content == "" {
		m.closeStreak()
		return
	}

	content := strings.ToLower(msg.Content)
	matchCount := 0
	for _, pp := range m.patterns.Patterns {
		n := len(pp.Pattern.FindAllStringIndex(content, -1))
		if n == 0 {
			continue
		}
		m.byPhrase[pp.Canonical] += n
		if m.byAuthor[msg.Author] == nil {
			m.byAuthor[msg.Author] = make(map[string]int)
		}
		m.byAuthor[msg.Author][pp.Canonical] += n
		m.byAuthorTotal[msg.Author] += n
		m.total += n
		matchCount += n
	}

	for _, c := range detectClimaxes(content) {
		c.Author = msg.Author
		c.Timestamp = msg.Timestamp
		m.climaxes = append(m.climaxes, c)
	}

	if matchCount == 0 {
		m.closeStreak()
		return
	}

	m.timeline[bucketKey(msg.Timestamp, BucketHour)] += matchCount

	if m.state == streakActive && m.streakAuthor == msg.Author {
		m.streakCount++
		return
	}
	// Different author, or coming from idle: close and open a fresh streak.
	m.closeStreak()
	m.state = streakActive
	m.streakAuthor = msg.Author
	m.streakCount = 1
	m.streakStart = msg.Timestamp
}

// closeStreak records the open streak if it reached length 2 and returns the
// tracker to idle.
func (m *Meter) closeStreak() {
	if m.state == streakActive && m.streakCount >= 2 {
		m.closedStreaks = append(m.closedStreaks, Streak{
			Author:         m.streakAuthor,
			Count:          m.streakCount,
			StartTimestamp: m.streakStart,
		})
	}
	m.state = streakIdle
	m.streakCount = 0
}

// Finalize flushes the streak tracker and assembles the meter output.
func (m *Meter) Finalize() *ProfanityStats {
	m.closeStreak()

	stats := &ProfanityStats{
		ByAuthor:        m.byAuthor,
		ByAuthorTotal:   m.byAuthorTotal,
		Total:           m.total,
		PerCapita:       make(map[string]float64, len(m.byAuthorTotal)),
		ClimaxByAuthor:  make(map[string]int),
		Timeline:        sortedSeries(m.timeline),
		Language:        m.patterns.Language,
		ClimaxInstances: m.climaxes,
	}

	// Top phrases by count, zero counts excluded. Pattern-set order breaks
	// ties deterministically.
	for _, pp := range m.patterns.Patterns {
		if count := m.byPhrase[pp.Canonical]; count > 0 {
			stats.ByPhrase = append(stats.ByPhrase, PhraseCount{Phrase: pp.Canonical, Count: count})
		}
	}
	sort.SliceStable(stats.ByPhrase, func(i, j int) bool {
		return stats.ByPhrase[i].Count > stats.ByPhrase[j].Count
	})
	if len(stats.ByPhrase) > topPhraseLimit {
		stats.ByPhrase = stats.ByPhrase[:topPhraseLimit]
	}

	// Per-author match rate per 100 messages.
	totalMessages := 0
	for _, n := range m.messageCounts {
		totalMessages += n
	}
	for author, matches := range m.byAuthorTotal {
		if n := m.messageCounts[author]; n > 0 {
			stats.PerCapita[author] = round2(float64(matches) / float64(n) * 100)
		}
	}
	if totalMessages > 0 {
		stats.TotalPerCapita = round2(float64(m.total) / float64(totalMessages) * 100)
	}

	// Top streaks ranked by length.
	sort.SliceStable(m.closedStreaks, func(i, j int) bool {
		return m.closedStreaks[i].Count > m.closedStreaks[j].Count
	})
	streaks := m.closedStreaks
	if len(streaks) > topStreakLimit {
		streaks = streaks[:topStreakLimit]
	}
	stats.Streaks = streaks

	if len(stats.ClimaxInstances) > climaxLimit {
		stats.ClimaxInstances = stats.ClimaxInstances[:climaxLimit]
	}
	totalIntensity := 0
	for _, c := range m.climaxes {
		stats.ClimaxByAuthor[c.Author]++
		totalIntensity += c.Intensity
	}
	if len(m.climaxes) > 0 {
		stats.AvgClimaxIntensity = round2(float64(totalIntensity) / float64(len(m.climaxes)))
	}

	return stats
}

// detectClimaxes finds emphatic word forms: a known stem whose final vowel is
// repeated 3 or more times ("dioooo", "madonnaaaa"). Repetitions is the
// length of the trailing vowel run; intensity grows with repetitions past 2,
// capped at 5.
func detectClimaxes(content string) []Climax {
	var out []Climax
	for _, word := range wordPattern.FindAllString(content, -1) {
		runes := []rune(word)
		if len(runes) < 4 {
			continue
		}

		last := runes[len(runes)-1]
		if !isVowel(last) {
			continue
		}
		run := 1
		for i := len(runes) - 2; i >= 0 && runes[i] == last; i-- {
			run++
		}
		if run < 3 {
			continue
		}

		// Collapse the run to a single vowel and look for a stem.
		base := string(runes[:len(runes)-run]) + string(last)
		matched := false
		for _, stem := range climaxStems {
			if strings.Contains(base, stem) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		intensity := run - 2
		if intensity > maxIntensity {
			intensity = maxIntensity
		}
		out = append(out, Climax{
			Text:        word,
			Intensity:   intensity,
			Repetitions: run,
		})
	}
	return out
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
