package parser

import (
	"regexp"
	"strings"
)

// Supported header shapes. The dash variant is "date, time - author: text";
// the bracket variant is "[date, time] author: text" and permits seconds.
// Date separators may be /, - or . and are normalized by the timestamp
// resolver.
var (
	messagePatternDash = regexp.MustCompile(
		`^(\d{1,4}[/.\-]\d{1,2}[/.\-]\d{1,4}),\s+(\d{1,2}[:.]\d{2})\s+-\s+(.+?):\s+(.+)$`)
	messagePatternBracket = regexp.MustCompile(
		`^\[(\d{1,4}[/.\-]\d{1,2}[/.\-]\d{1,4}),\s+(\d{1,2}[:.]\d{2}(?:[:.]\d{2})?)\]\s+(.+?):\s+(.+)$`)

	// Same shapes minus the "author:" segment identify system lines.
	systemPatternDash = regexp.MustCompile(
		`^(\d{1,4}[/.\-]\d{1,2}[/.\-]\d{1,4}),\s+(\d{1,2}[:.]\d{2})\s+-\s+(.+)$`)
	systemPatternBracket = regexp.MustCompile(
		`^\[(\d{1,4}[/.\-]\d{1,2}[/.\-]\d{1,4}),\s+(\d{1,2}[:.]\d{2}(?:[:.]\d{2})?)\]\s+(.+)$`)

	// systemAuthorPattern extracts the acting author from a system event as
	// the text preceding a verb cue.
	systemAuthorPattern = regexp.MustCompile(
		`^([^:]+?)\s+(added|removed|created|left|changed|ha\s+creato|ha\s+aggiunto|ha\s+rimosso|ha\s+abbandonato|ha\s+modificato)`)
)

// mediaMarkers are placeholder strings the export substitutes for attached
// media, in the supported languages. Matching is case-insensitive substring.
var mediaMarkers = []string{
	// English
	"<media omitted>",
	"media omitted",
	"<image omitted>",
	"<video omitted>",
	"<audio omitted>",
	"<sticker omitted>",
	"<gif omitted>",
	"<document omitted>",
	"<contact card omitted>",
	// Italian
	"<media non incluso>",
	"media non incluso",
	"<immagine omessa>",
	"immagine omessa",
	"<video omesso>",
	"video omesso",
	"<audio omesso>",
	"audio omesso",
	"<sticker omesso>",
	"sticker omesso",
	"<gif omessa>",
	"gif omessa",
	"<documento omesso>",
	"documento omesso",
	"<scheda contatto omessa>",
	"scheda contatto omessa",
	"<file multimediale omesso>",
	"file multimediale omesso",
}

// systemKeywords identify administrative event lines, in the supported
// languages.
var systemKeywords = []string{
	"created group",
	"added",
	"removed",
	"left",
	"changed",
	"Messages and calls are end-to-end encrypted",
	"changed the subject",
	"changed this group's icon",
	"deleted this group's icon",
	// Italian
	"ha creato questo gruppo",
	"ti ha aggiunto",
	"ha abbandonato",
	"ha rimosso",
	"ha modificato",
	"crittografati end-to-end",
	"crittografate end-to-end",
}

// lineKind categorizes a transcript line.
type lineKind int

const (
	lineUnmatched lineKind = iota
	lineMessage
	lineSystem
)

// classifiedLine is the result of matching one physical line against the
// supported header shapes.
type classifiedLine struct {
	kind      lineKind
	dateToken string
	timeToken string
	author    string // message headers only
	text      string
}

// classifyLine matches a line against the header shapes in precedence order:
// dialogue message first, then system event. Continuation handling is the
// caller's concern; an unmatched line is reported as such.
func classifyLine(line string) classifiedLine {
	for _, re := range []*regexp.Regexp{messagePatternDash, messagePatternBracket} {
		if m := re.FindStringSubmatch(line); m != nil {
			return classifiedLine{
				kind:      lineMessage,
				dateToken: m[1],
				timeToken: m[2],
				author:    strings.TrimSpace(m[3]),
				text:      m[4],
			}
		}
	}
	for _, re := range []*regexp.Regexp{systemPatternDash, systemPatternBracket} {
		if m := re.FindStringSubmatch(line); m != nil {
			return classifiedLine{
				kind:      lineSystem,
				dateToken: m[1],
				timeToken: m[2],
				text:      m[3],
			}
		}
	}
	return classifiedLine{kind: lineUnmatched}
}

// IsMediaPlaceholder reports whether content matches a known media
// placeholder marker in any supported language.
func IsMediaPlaceholder(content string) bool {
	lowered := strings.ToLower(strings.TrimSpace(content))
	for _, marker := range mediaMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

// isSystemEvent reports whether trailing header text matches the
// administrative keyword list.
func isSystemEvent(text string) bool {
	for _, kw := range systemKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// systemAuthor extracts the acting author of a system event, defaulting to
// the literal label "System".
func systemAuthor(text string) string {
	if m := systemAuthorPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return "System"
}
