// Package words ranks lexical frequency over message content.
package words

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/chatlens/chatlens/pkg/parser"
)

// Options controls tokenization and ranking.
type Options struct {
	// Limit is the hard upper bound on ranked terms returned.
	Limit int

	// MinLength drops tokens shorter than this many runes.
	MinLength int
}

// DefaultLimit is used when Options.Limit is zero.
const DefaultLimit = 100

// Validate checks caller-supplied options before any work is done.
func (o Options) Validate() error {
	if o.Limit < 0 {
		return fmt.Errorf("limit: must be positive, got %d", o.Limit)
	}
	if o.MinLength < 0 {
		return fmt.Errorf("min_length: must be positive, got %d", o.MinLength)
	}
	return nil
}

// Term is one ranked token.
type Term struct {
	Word  string `json:"word"`
	Count int    `json:"count"`

	// Frequency is the percentage of all filtered tokens.
	Frequency float64 `json:"frequency"`
}

// Result is the ranked output.
type Result struct {
	Words       []Term `json:"words"`
	TotalWords  int    `json:"total_words"`
	UniqueWords int    `json:"unique_words"`
}

var (
	urlPattern     = regexp.MustCompile(`http\S+|www\.\S+`)
	emailPattern   = regexp.MustCompile(`\S+@\S+`)
	nonWordPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s']`)
	tokenPattern   = regexp.MustCompile(`[\p{L}\p{N}_]+`)
)

// Frequency tokenizes the content of non-media, non-system messages, drops
// stopwords and short tokens, and ranks the rest by descending count. Ties
// keep first-encountered order, so output is deterministic for a given
// sequence.
func Frequency(messages []parser.Message, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	limit := opts.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	counts := make(map[string]int)
	var order []string
	for _, m := range messages {
		if m.IsMedia || m.IsSystem || m.Content == "" {
			continue
		}
		for _, token := range tokenize(m.Content) {
			if len([]rune(token)) < opts.MinLength || stopwords[token] {
				continue
			}
			if counts[token] == 0 {
				order = append(order, token)
			}
			counts[token]++
		}
	}

	total := 0
	for _, c := range counts {
		total += c
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	result := &Result{
		Words:       []Term{},
		TotalWords:  total,
		UniqueWords: len(counts),
	}
	for _, word := range order {
		if len(result.Words) >= limit {
			break
		}
		term := Term{Word: word, Count: counts[word]}
		if total > 0 {
			term.Frequency = float64(term.Count) / float64(total) * 100
		}
		result.Words = append(result.Words, term)
	}
	return result, nil
}

// tokenize strips URLs and email-like tokens, clears punctuation except
// apostrophes, and splits into lowercased word tokens.
func tokenize(text string) []string {
	text = urlPattern.ReplaceAllString(text, "")
	text = emailPattern.ReplaceAllString(text, "")
	text = nonWordPattern.ReplaceAllString(text, " ")

	raw := tokenPattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		tokens = append(tokens, strings.ToLower(t))
	}
	return tokens
}
