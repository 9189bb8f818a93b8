package stats

import (
	"testing"
	"time"

	"github.com/chatlens/chatlens/pkg/parser"
)

func meterMsg(author, content string, minute int) parser.Message {
	return parser.Message{
		Timestamp: time.Date(2023, 3, 15, 10, minute, 0, 0, time.UTC),
		Author:    author,
		Content:   content,
	}
}

func runMeter(language string, messages ...parser.Message) *ProfanityStats {
	m := NewMeter(FallbackPatterns(language))
	for _, msg := range messages {
		m.Process(msg)
	}
	return m.Finalize()
}

func TestMeter_CountsMatches(t *testing.T) {
	stats := runMeter("it",
		meterMsg("Alice", "porco dio", 0),
		meterMsg("Bob", "tutto bene", 1),
		meterMsg("Alice", "dio cane e porco dio", 2),
	)

	if stats.Total != 3 {
		t.Errorf("Total = %d, want 3", stats.Total)
	}
	if stats.ByAuthorTotal["Alice"] != 3 {
		t.Errorf("ByAuthorTotal[Alice] = %d, want 3", stats.ByAuthorTotal["Alice"])
	}
	if stats.ByAuthor["Alice"]["porco dio"] != 2 {
		t.Errorf("ByAuthor[Alice][porco dio] = %d, want 2", stats.ByAuthor["Alice"]["porco dio"])
	}
	if stats.Language != "it" {
		t.Errorf("Language = %q, want it", stats.Language)
	}
}

func TestMeter_ByPhraseRanked(t *testing.T) {
	stats := runMeter("en",
		meterMsg("A", "shit shit shit", 0),
		meterMsg("A", "damn", 1),
	)

	if len(stats.ByPhrase) != 2 {
		t.Fatalf("got %d phrases, want 2", len(stats.ByPhrase))
	}
	if stats.ByPhrase[0].Phrase != "shit" || stats.ByPhrase[0].Count != 3 {
		t.Errorf("top phrase = %+v, want shit x3", stats.ByPhrase[0])
	}
}

func TestMeter_PerCapita(t *testing.T) {
	stats := runMeter("en",
		meterMsg("A", "damn", 0),
		meterMsg("A", "ok", 1),
		meterMsg("A", "fine", 2),
		meterMsg("B", "hello", 3),
	)

	// 1 match over 3 messages, per 100.
	if got := stats.PerCapita["A"]; got != 33.33 {
		t.Errorf("PerCapita[A] = %v, want 33.33", got)
	}
	if got := stats.TotalPerCapita; got != 25 {
		t.Errorf("TotalPerCapita = %v, want 25", got)
	}
}

func TestMeter_Streaks(t *testing.T) {
	// A, A, B, A: only the first pair forms a streak.
	stats := runMeter("en",
		meterMsg("A", "damn", 0),
		meterMsg("A", "shit", 1),
		meterMsg("B", "fuck", 2),
		meterMsg("A", "damn again", 3),
	)

	if len(stats.Streaks) != 1 {
		t.Fatalf("got %d streaks, want 1", len(stats.Streaks))
	}
	s := stats.Streaks[0]
	if s.Author != "A" || s.Count != 2 {
		t.Errorf("streak = %+v, want author A count 2", s)
	}
	if !s.StartTimestamp.Equal(time.Date(2023, 3, 15, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("StartTimestamp = %v, want first message time", s.StartTimestamp)
	}
}

func TestMeter_StreakBrokenByNonMatching(t *testing.T) {
	tests := []struct {
		name    string
		breaker parser.Message
	}{
		{"clean message", meterMsg("A", "all good", 1)},
		{"media message", parser.Message{Timestamp: time.Date(2023, 3, 15, 10, 1, 0, 0, time.UTC), Author: "A", IsMedia: true}},
		{"empty message", meterMsg("A", "", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := runMeter("en",
				meterMsg("A", "damn", 0),
				tt.breaker,
				meterMsg("A", "shit", 2),
			)
			if len(stats.Streaks) != 0 {
				t.Errorf("got %d streaks, want 0 (single matches are not streaks)", len(stats.Streaks))
			}
		})
	}
}

func TestMeter_StreakSurvivesToFinalize(t *testing.T) {
	stats := runMeter("en",
		meterMsg("A", "damn", 0),
		meterMsg("A", "shit", 1),
		meterMsg("A", "fuck", 2),
	)

	if len(stats.Streaks) != 1 {
		t.Fatalf("got %d streaks, want 1", len(stats.Streaks))
	}
	if stats.Streaks[0].Count != 3 {
		t.Errorf("streak count = %d, want 3", stats.Streaks[0].Count)
	}
}

func TestMeter_IgnoresSystemMessages(t *testing.T) {
	stats := runMeter("en",
		meterMsg("A", "damn", 0),
		parser.Message{Timestamp: time.Date(2023, 3, 15, 10, 1, 0, 0, time.UTC), Author: "System", Content: "damn left", IsSystem: true},
	)

	if stats.Total != 1 {
		t.Errorf("Total = %d, want 1", stats.Total)
	}
}

func TestDetectClimaxes(t *testing.T) {
	tests := []struct {
		name            string
		content         string
		wantCount       int
		wantRepetitions int
		wantIntensity   int
	}{
		{"basic repetition", "porco dioooo", 1, 4, 2},
		{"minimum run", "diooo", 1, 3, 1},
		{"below minimum run", "dioo", 0, 0, 0},
		{"no stem", "noooo", 0, 0, 0},
		{"intensity capped", "dioooooooooo", 1, 10, 5},
		{"madonna", "madonnaaaa", 1, 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectClimaxes(tt.content)
			if len(got) != tt.wantCount {
				t.Fatalf("got %d climaxes, want %d", len(got), tt.wantCount)
			}
			if tt.wantCount == 0 {
				return
			}
			if got[0].Repetitions != tt.wantRepetitions {
				t.Errorf("Repetitions = %d, want %d", got[0].Repetitions, tt.wantRepetitions)
			}
			if got[0].Intensity != tt.wantIntensity {
				t.Errorf("Intensity = %d, want %d", got[0].Intensity, tt.wantIntensity)
			}
		})
	}
}

func TestMeter_ClimaxAttribution(t *testing.T) {
	stats := runMeter("it",
		meterMsg("Alice", "porco dioooo", 0),
		meterMsg("Bob", "madonnaaaa", 1),
		meterMsg("Alice", "diooo", 2),
	)

	if len(stats.ClimaxInstances) != 3 {
		t.Fatalf("got %d climaxes, want 3", len(stats.ClimaxInstances))
	}
	if stats.ClimaxByAuthor["Alice"] != 2 {
		t.Errorf("ClimaxByAuthor[Alice] = %d, want 2", stats.ClimaxByAuthor["Alice"])
	}
	// Intensities 2, 2, 1.
	if stats.AvgClimaxIntensity != 1.67 {
		t.Errorf("AvgClimaxIntensity = %v, want 1.67", stats.AvgClimaxIntensity)
	}
}
