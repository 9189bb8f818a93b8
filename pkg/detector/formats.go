package detector

import "regexp"

// HeaderFormat represents a known transcript header shape for detection.
type HeaderFormat struct {
	Name       string         // Human-readable name
	Pattern    *regexp.Regexp // Compiled regex (set during init)
	PatternStr string         // Pattern string for config output
	Example    string         // Example header line
}

// DefaultFormats returns the built-in header shapes to detect.
// Formats are ordered by specificity (bracketed shape first).
func DefaultFormats() []*HeaderFormat {
	formats := []*HeaderFormat{
		{
			Name:       "Bracketed header",
			PatternStr: `^\[(\d{1,4}[/.\-]\d{1,2}[/.\-]\d{1,4}),?\s+(\d{1,2}[:.]\d{2}(?:[:.]\d{2})?)\]\s+([^:]+):\s?(.*)$`,
			Example:    "[12/03/2023, 14:30:05] Alice: hello",
		},
		{
			Name:       "Dash header",
			PatternStr: `^(\d{1,4}[/.\-]\d{1,2}[/.\-]\d{1,4}),\s+(\d{1,2}[:.]\d{2})\s+-\s+(.+?):\s+(.+)$`,
			Example:    "12/03/2023, 14:30 - Alice: hello",
		},
	}

	for _, f := range formats {
		f.Pattern = regexp.MustCompile(f.PatternStr)
	}

	return formats
}

// Language cue phrases. Each hit on a sampled line counts toward that
// language's score.
var italianCues = []string{
	"<media omessi>",
	"media omesso",
	"immagine omessa",
	"video omesso",
	"audio omesso",
	"sticker non incluso",
	"gif non inclusa",
	"documento omesso",
	"messaggi e le chiamate sono crittografati",
	"ha creato il gruppo",
	"ha aggiunto",
	"ha rimosso",
	"ha abbandonato",
	"ha modificato",
	"hai aggiunto",
	"chiamata persa",
	"videochiamata persa",
}

var englishCues = []string{
	"<media omitted>",
	"image omitted",
	"video omitted",
	"audio omitted",
	"sticker omitted",
	"gif omitted",
	"document omitted",
	"messages and calls are end-to-end encrypted",
	"created group",
	"created this group",
	"added you",
	"you were added",
	"left",
	"changed the subject",
	"changed this group's icon",
	"missed voice call",
	"missed video call",
}
