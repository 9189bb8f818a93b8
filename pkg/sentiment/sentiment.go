// Package sentiment attaches a coarse sentiment category and score to
// message text. It is a post-parse step: the parser never calls it.
package sentiment

import (
	"math"
	"regexp"
	"strings"

	"github.com/chatlens/chatlens/pkg/parser"
)

// Categories beyond the three polarity labels.
const (
	Positive = "positive"
	Negative = "negative"
	Neutral  = "neutral"
	Joy      = "joy"
	Anger    = "anger"
	Sadness  = "sadness"
	Fear     = "fear"
)

// emotion pairs a category with its keyword cue list and the score gate the
// override must satisfy. Order matters: the first matching emotion wins, and
// the keyword match is checked BEFORE falling back to the continuous score.
type emotion struct {
	name     string
	keywords []string
	gate     func(score float64) bool
}

var emotions = []emotion{
	{
		name: Joy,
		keywords: []string{
			"felice", "contento", "felicità", "gioia", "allegro", "divertente",
			"happy", "joy", "glad", "excited", "great", "wonderful", "amazing",
			"fantastic", "love", "like", "hahah", "ahah",
		},
		gate: func(s float64) bool { return s >= -0.1 },
	},
	{
		name: Anger,
		keywords: []string{
			"arrabbiato", "rabbia", "incazzato", "stronzo", "merda", "cazzo",
			"angry", "mad", "furious", "hate", "damn", "shit", "fuck", "asshole",
		},
		gate: func(s float64) bool { return s <= 0.1 },
	},
	{
		name: Sadness,
		keywords: []string{
			"triste", "tristezza", "depresso", "malinconico", "piangere",
			"sad", "depressed", "sorrow", "unhappy", "cry", "tears",
		},
		gate: func(s float64) bool { return s <= 0.2 },
	},
	{
		name: Fear,
		keywords: []string{
			"paura", "spaventato", "timore", "ansia", "preoccupato",
			"fear", "afraid", "scared", "worried", "anxious", "nervous",
		},
		gate: func(s float64) bool { return s <= 0.1 },
	},
}

// polarityLexicon maps words to a polarity weight in a small bilingual
// lexicon; the compound score is the normalized sum over matched tokens.
var polarityLexicon = map[string]float64{
	// positive
	"good": 1, "nice": 1, "great": 1.5, "love": 1.5, "happy": 1.5, "best": 1.5,
	"wonderful": 2, "amazing": 2, "fantastic": 2, "perfect": 2, "thanks": 1,
	"thank": 1, "yes": 0.5, "cool": 1, "fun": 1, "beautiful": 1.5, "win": 1,
	"bene": 1, "bello": 1, "bravo": 1, "ottimo": 1.5, "grazie": 1, "fantastico": 2,
	"perfetto": 2, "felice": 1.5, "amore": 1.5, "grande": 0.5,
	// negative
	"bad": -1, "sad": -1.5, "hate": -2, "terrible": -2, "awful": -2, "worst": -2,
	"angry": -1.5, "no": -0.5, "wrong": -1, "problem": -1, "ugly": -1.5,
	"lose": -1, "fail": -1.5, "cry": -1.5, "afraid": -1, "scared": -1.5,
	"male": -1, "brutto": -1.5, "odio": -2, "terribile": -2, "triste": -1.5,
	"sbagliato": -1, "problema": -1, "paura": -1.5, "merda": -1.5, "cazzo": -1,
}

var (
	urlPattern   = regexp.MustCompile(`http\S+|www\.\S+`)
	emailPattern = regexp.MustCompile(`\S+@\S+`)
	spacePattern = regexp.MustCompile(`\s+`)
	tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)
)

// Analyze scores a message text and returns (category, score). The score is
// in [-1, 1]. The emotion-keyword override is evaluated before the polarity
// thresholds; that precedence is relied on downstream.
func Analyze(text string) (string, float64) {
	cleaned := clean(text)
	if cleaned == "" {
		return Neutral, 0.0
	}

	score := compound(cleaned)
	lowered := strings.ToLower(cleaned)

	for _, e := range emotions {
		for _, kw := range e.keywords {
			if strings.Contains(lowered, kw) {
				if e.gate(score) {
					return e.name, score
				}
				break
			}
		}
	}

	switch {
	case score >= 0.05:
		return Positive, score
	case score <= -0.05:
		return Negative, score
	default:
		return Neutral, score
	}
}

// Attach analyzes every ordinary message in place. System and media
// messages are left untouched.
func Attach(messages []parser.Message) {
	for i := range messages {
		m := &messages[i]
		if m.IsSystem || m.IsMedia || m.Content == "" {
			continue
		}
		m.Sentiment, m.SentimentScore = Analyze(m.Content)
	}
}

// compound sums lexicon weights over tokens, normalized into [-1, 1].
func compound(text string) float64 {
	sum := 0.0
	hits := 0
	for _, token := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if w, ok := polarityLexicon[token]; ok {
			sum += w
			hits++
		}
	}
	if hits == 0 {
		return 0.0
	}

	norm := sum / math.Sqrt(sum*sum+15) // squashes large sums toward ±1
	if norm > 1 {
		norm = 1
	} else if norm < -1 {
		norm = -1
	}
	return norm
}

func clean(text string) string {
	text = urlPattern.ReplaceAllString(text, "")
	text = emailPattern.ReplaceAllString(text, "")
	text = spacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
