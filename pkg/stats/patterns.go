package stats

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// PhrasePattern is one tracked lexical pattern with its canonical name.
type PhrasePattern struct {
	Canonical string
	Pattern   *regexp.Regexp
}

// PatternSet is an ordered list of phrase patterns for one language.
// Ordering is preserved from the source file so results are deterministic.
type PatternSet struct {
	Language string
	Patterns []PhrasePattern
}

// Phrase list filenames per language tag.
const (
	italianPatternFile = "bestemmie.txt"
	englishPatternFile = "swearwords.txt"
)

// LoadPatterns reads the language-specific phrase list from dir, one phrase
// per line. When the file is missing or unreadable the built-in fallback set
// for the language is returned; the meter must always have patterns to work
// with.
func LoadPatterns(dir, language string) *PatternSet {
	language = normalizeLanguage(language)

	filename := englishPatternFile
	if language == "it" {
		filename = italianPatternFile
	}

	f, err := os.Open(filepath.Join(dir, filename)) // #nosec G304 -- configured data dir
	if err != nil {
		return FallbackPatterns(language)
	}
	defer f.Close()

	set := &PatternSet{Language: language}
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		phrase := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if phrase == "" || seen[phrase] {
			continue
		}
		seen[phrase] = true

		if p := compilePhrase(phrase, language); p != nil {
			set.Patterns = append(set.Patterns, PhrasePattern{
				Canonical: strings.Join(strings.Fields(phrase), " "),
				Pattern:   p,
			})
		}
	}

	if scanner.Err() != nil || len(set.Patterns) == 0 {
		return FallbackPatterns(language)
	}
	return set
}

// compilePhrase builds a case-insensitive, word-boundary-aware matcher.
// Multi-word phrases tolerate inserted whitespace between words; single
// English words match with trailing suffixes.
func compilePhrase(phrase, language string) *regexp.Regexp {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return nil
	}

	var expr string
	if len(words) >= 2 {
		quoted := make([]string, len(words))
		for i, w := range words {
			quoted[i] = regexp.QuoteMeta(w)
		}
		expr = `\b` + strings.Join(quoted, `\s*`) + `\b`
	} else if language == "en" {
		expr = `\b` + regexp.QuoteMeta(phrase) + `\w*\b`
	} else {
		expr = `\b` + regexp.QuoteMeta(phrase) + `\b`
	}

	re, err := regexp.Compile(`(?i)` + expr)
	if err != nil {
		return nil
	}
	return re
}

// FallbackPatterns returns the safe built-in pattern set for a language tag.
func FallbackPatterns(language string) *PatternSet {
	if normalizeLanguage(language) == "it" {
		return &PatternSet{
			Language: "it",
			Patterns: []PhrasePattern{
				{Canonical: "porco dio", Pattern: regexp.MustCompile(`(?i)\bporco\s*di+o+\b`)},
				{Canonical: "dio porco", Pattern: regexp.MustCompile(`(?i)\bdio\s*porco\b`)},
				{Canonical: "porca madonna", Pattern: regexp.MustCompile(`(?i)\bporca\s*madonna\b`)},
				{Canonical: "dio cane", Pattern: regexp.MustCompile(`(?i)\bdio\s*cane\b`)},
			},
		}
	}
	return &PatternSet{
		Language: "en",
		Patterns: []PhrasePattern{
			{Canonical: "fuck", Pattern: regexp.MustCompile(`(?i)\bfuck\w*\b`)},
			{Canonical: "shit", Pattern: regexp.MustCompile(`(?i)\bshit\w*\b`)},
			{Canonical: "damn", Pattern: regexp.MustCompile(`(?i)\bdamn\w*\b`)},
			{Canonical: "ass", Pattern: regexp.MustCompile(`(?i)\bass(?:hole)?\b`)},
		},
	}
}

func normalizeLanguage(language string) string {
	if strings.ToLower(strings.TrimSpace(language)) == "it" {
		return "it"
	}
	return "en"
}
