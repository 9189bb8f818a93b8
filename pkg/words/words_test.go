package words

import (
	"testing"

	"github.com/chatlens/chatlens/pkg/parser"
)

func wordMsg(content string) parser.Message {
	return parser.Message{Author: "A", Content: content}
}

func TestFrequency_RanksByCount(t *testing.T) {
	messages := []parser.Message{
		wordMsg("coffee coffee coffee"),
		wordMsg("pizza pizza"),
		wordMsg("coffee salad"),
	}

	result, err := Frequency(messages, Options{})
	if err != nil {
		t.Fatalf("Frequency() error = %v", err)
	}

	if result.TotalWords != 7 {
		t.Errorf("TotalWords = %d, want 7", result.TotalWords)
	}
	if result.UniqueWords != 3 {
		t.Errorf("UniqueWords = %d, want 3", result.UniqueWords)
	}

	if result.Words[0].Word != "coffee" || result.Words[0].Count != 4 {
		t.Errorf("top word = %+v, want coffee x4", result.Words[0])
	}
	if result.Words[1].Word != "pizza" {
		t.Errorf("second word = %q, want pizza", result.Words[1].Word)
	}
}

func TestFrequency_ExcludesStopwords(t *testing.T) {
	messages := []parser.Message{wordMsg("the quick and the lazy coffee")}

	result, err := Frequency(messages, Options{})
	if err != nil {
		t.Fatalf("Frequency() error = %v", err)
	}

	for _, term := range result.Words {
		if term.Word == "the" || term.Word == "and" {
			t.Errorf("stopword %q in results", term.Word)
		}
	}
}

func TestFrequency_MinLength(t *testing.T) {
	messages := []parser.Message{wordMsg("hi coffee ok tea")}

	result, err := Frequency(messages, Options{MinLength: 4})
	if err != nil {
		t.Fatalf("Frequency() error = %v", err)
	}
	if result.UniqueWords != 1 {
		t.Fatalf("UniqueWords = %d, want 1", result.UniqueWords)
	}
	if result.Words[0].Word != "coffee" {
		t.Errorf("word = %q, want coffee", result.Words[0].Word)
	}
}

func TestFrequency_StripsURLsAndEmails(t *testing.T) {
	messages := []parser.Message{
		wordMsg("check https://example.com/page and www.example.org please"),
		wordMsg("mail someone@example.com about coffee"),
	}

	result, err := Frequency(messages, Options{})
	if err != nil {
		t.Fatalf("Frequency() error = %v", err)
	}

	for _, term := range result.Words {
		switch term.Word {
		case "https", "example", "com", "org", "someone":
			t.Errorf("URL or email fragment %q in results", term.Word)
		}
	}
}

func TestFrequency_SkipsMediaAndSystem(t *testing.T) {
	messages := []parser.Message{
		wordMsg("coffee"),
		{Author: "A", IsMedia: true},
		{Author: "System", Content: "somebody created group coffee", IsSystem: true},
	}

	result, err := Frequency(messages, Options{})
	if err != nil {
		t.Fatalf("Frequency() error = %v", err)
	}
	if result.TotalWords != 1 {
		t.Errorf("TotalWords = %d, want 1", result.TotalWords)
	}
}

func TestFrequency_Limit(t *testing.T) {
	messages := []parser.Message{wordMsg("alpha bravo charlie delta echo")}

	result, err := Frequency(messages, Options{Limit: 2})
	if err != nil {
		t.Fatalf("Frequency() error = %v", err)
	}
	if len(result.Words) != 2 {
		t.Errorf("got %d words, want 2", len(result.Words))
	}
	// Totals still reflect the full distribution.
	if result.UniqueWords != 5 {
		t.Errorf("UniqueWords = %d, want 5", result.UniqueWords)
	}
}

func TestFrequency_InvalidOptions(t *testing.T) {
	if _, err := Frequency(nil, Options{Limit: -1}); err == nil {
		t.Error("negative limit: expected error, got nil")
	}
	if _, err := Frequency(nil, Options{MinLength: -1}); err == nil {
		t.Error("negative min_length: expected error, got nil")
	}
}

func TestFrequency_FrequencyPercentages(t *testing.T) {
	messages := []parser.Message{wordMsg("coffee coffee pizza pizza")}

	result, err := Frequency(messages, Options{})
	if err != nil {
		t.Fatalf("Frequency() error = %v", err)
	}
	for _, term := range result.Words {
		if term.Frequency != 50 {
			t.Errorf("Frequency(%q) = %v, want 50", term.Word, term.Frequency)
		}
	}
}
