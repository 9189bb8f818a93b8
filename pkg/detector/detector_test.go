package detector

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDetectFromLines_BracketedHeader(t *testing.T) {
	lines := []string{
		"[12/03/2023, 14:30:05] Alice: hello",
		"[12/03/2023, 14:31:10] Bob: hi there",
		"continuation without a header",
		"[12/03/2023, 14:32:00] Alice: bye",
	}

	result := New().DetectFromLines(lines)

	if !result.HasMatch() {
		t.Fatal("no match for bracketed lines")
	}
	best := result.BestMatch()
	if best.Format.Name != "Bracketed header" {
		t.Errorf("best match = %q, want Bracketed header", best.Format.Name)
	}
	if best.MatchCount != 3 {
		t.Errorf("MatchCount = %d, want 3", best.MatchCount)
	}
	if best.Confidence != 0.75 {
		t.Errorf("Confidence = %v, want 0.75", best.Confidence)
	}
	if best.SampleLine != lines[0] {
		t.Errorf("SampleLine = %q, want first matching line", best.SampleLine)
	}
	if result.HeaderLines != 3 {
		t.Errorf("HeaderLines = %d, want 3", result.HeaderLines)
	}
}

func TestDetectFromLines_DashHeader(t *testing.T) {
	lines := []string{
		"12/03/2023, 14:30 - Alice: hello",
		"12/03/2023, 14:31 - Bob: hi",
	}

	best := New().DetectFromLines(lines).BestMatch()
	if best == nil || best.Format.Name != "Dash header" {
		t.Fatalf("best match = %v, want Dash header", best)
	}
	if best.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", best.Confidence)
	}
}

func TestDetectFromLines_NoMatch(t *testing.T) {
	result := New().DetectFromLines([]string{"plain text", "more plain text"})
	if result.HasMatch() {
		t.Errorf("Matches = %v, want none", result.Matches)
	}
	if result.BestMatch() != nil {
		t.Error("BestMatch() should be nil without matches")
	}
}

func TestDetectFromLines_Empty(t *testing.T) {
	result := New().DetectFromLines(nil)
	if result.SampledLines != 0 || result.HasMatch() {
		t.Errorf("result = %+v, want empty", result)
	}
	if result.Language != "en" {
		t.Errorf("Language = %q, want en default", result.Language)
	}
}

func TestDetectFromLines_Language(t *testing.T) {
	t.Run("italian cues win", func(t *testing.T) {
		lines := []string{
			"[12/03/2023, 14:30] Alice: <Media omessi>",
			"[12/03/2023, 14:31] Bob: immagine omessa",
			"[12/03/2023, 14:32] Alice: ciao",
		}
		result := New().DetectFromLines(lines)
		if result.Language != "it" {
			t.Errorf("Language = %q, want it", result.Language)
		}
		if result.LanguageHits != 2 {
			t.Errorf("LanguageHits = %d, want 2", result.LanguageHits)
		}
	})

	t.Run("english cues", func(t *testing.T) {
		lines := []string{
			"[12/03/2023, 14:30] Alice: <Media omitted>",
			"[12/03/2023, 14:31] Bob: image omitted",
		}
		result := New().DetectFromLines(lines)
		if result.Language != "en" {
			t.Errorf("Language = %q, want en", result.Language)
		}
		if result.LanguageHits != 2 {
			t.Errorf("LanguageHits = %d, want 2", result.LanguageHits)
		}
	})
}

func TestDetectFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chat.txt")
	content := "[12/03/2023, 14:30:05] Alice: hello\n\n[12/03/2023, 14:31:10] Bob: hi\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	result, err := New().DetectFromFile(context.Background(), path)
	if err != nil {
		t.Fatalf("DetectFromFile() error = %v", err)
	}
	if result.SampledLines != 2 {
		t.Errorf("SampledLines = %d, want 2 (blank skipped)", result.SampledLines)
	}
	if !result.HasMatch() {
		t.Error("expected a header match")
	}
}

func TestDetectFromFile_Missing(t *testing.T) {
	_, err := New().DetectFromFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWithSampleSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chat.txt")
	var content string
	for i := 0; i < 50; i++ {
		content += "[12/03/2023, 14:30] Alice: line\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	result, err := New(WithSampleSize(10)).DetectFromFile(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if result.SampledLines != 10 {
		t.Errorf("SampledLines = %d, want 10", result.SampledLines)
	}
}
