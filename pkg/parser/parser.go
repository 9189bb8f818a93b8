package parser

import (
	"errors"
	"strings"
	"time"
)

// ErrNoMessages is returned when the input produced no parsable messages.
var ErrNoMessages = errors.New("no parsable messages in input")

// DefaultPreambleLines is the number of leading export-metadata lines
// discarded before parsing (group name, encryption notice, creation events).
const DefaultPreambleLines = 5

// Options configures transcript parsing.
type Options struct {
	// PreambleLines is the size of the discarded preamble. Negative means
	// DefaultPreambleLines; zero disables the discard.
	PreambleLines int

	// Now supplies the recovery timestamp for the first message when its
	// header timestamp is malformed. Defaults to time.Now.
	Now func() time.Time
}

// bidiReplacer strips bidirectional-control invisible characters that chat
// exports embed around names and markers.
var bidiReplacer = strings.NewReplacer(
	"‎", "", // left-to-right mark
	"‏", "", // right-to-left mark
	"‪", "", // left-to-right embedding
	"‬", "", // pop directional formatting
)

// Parse converts raw transcript text into an ordered message sequence.
//
// The parser is a two-state machine: with no pending message, only header
// lines are accepted; with a pending message, non-header lines are appended
// to it as continuations. System events are appended directly and never
// buffered. Unmatched lines with no pending message are dropped: a single
// corrupt line must not abort the parse. Output order equals input order.
func Parse(text string, opts Options) ([]Message, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	preamble := opts.PreambleLines
	if preamble < 0 {
		preamble = DefaultPreambleLines
	}

	lines := strings.Split(text, "\n")
	if len(lines) > preamble {
		lines = lines[preamble:]
	}

	var (
		messages []Message
		pending  *Message // nil means no pending message
		lastSeen time.Time
	)

	flush := func() {
		if pending != nil {
			messages = append(messages, *pending)
			pending = nil
		}
	}

	for _, raw := range lines {
		line := strings.TrimSpace(bidiReplacer.Replace(raw))
		if line == "" {
			continue
		}

		cl := classifyLine(line)
		switch cl.kind {
		case lineMessage:
			flush()
			ts := resolveOrRecover(cl.dateToken, cl.timeToken, lastSeen, opts.Now)
			lastSeen = ts

			msg := Message{
				Timestamp: ts,
				Author:    cl.author,
				Content:   cl.text,
			}
			if IsMediaPlaceholder(cl.text) {
				msg.IsMedia = true
				msg.Content = ""
			}
			pending = &msg

		case lineSystem:
			flush()
			if !isSystemEvent(cl.text) {
				continue
			}
			ts := resolveOrRecover(cl.dateToken, cl.timeToken, lastSeen, opts.Now)
			lastSeen = ts

			messages = append(messages, Message{
				Timestamp: ts,
				Author:    systemAuthor(cl.text),
				Content:   cl.text,
				IsSystem:  true,
			})

		default:
			if pending == nil {
				continue // recovery, not failure
			}
			if pending.Content == "" {
				pending.Content = line
			} else {
				pending.Content += "\n" + line
			}
		}
	}
	flush()

	if len(messages) == 0 {
		return nil, ErrNoMessages
	}
	return messages, nil
}

// resolveOrRecover resolves a header timestamp, substituting the previous
// message's timestamp (or now, for the first message) when resolution fails.
// Best-effort by design: one bad header must not stop the parse.
func resolveOrRecover(dateToken, timeToken string, last time.Time, now func() time.Time) time.Time {
	ts, err := ResolveTimestamp(dateToken, timeToken)
	if err == nil {
		return ts
	}
	if !last.IsZero() {
		return last
	}
	return now()
}
