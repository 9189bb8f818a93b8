package parser

import "time"

// Filter is a set of predicates applied to a message sequence. Zero-value
// predicates are inactive; an empty Filter returns the input unchanged.
type Filter struct {
	// Authors restricts to messages whose author is in the set.
	Authors []string

	// Start and End bound the timestamp range inclusively.
	Start *time.Time
	End   *time.Time

	// Sentiment restricts to messages carrying the given attached sentiment.
	Sentiment string
}

// Empty reports whether no predicate is active.
func (f Filter) Empty() bool {
	return len(f.Authors) == 0 && f.Start == nil && f.End == nil && f.Sentiment == ""
}

// Apply returns the messages satisfying every active predicate, preserving
// order. The input is never mutated; applying no predicates returns the
// input slice itself.
func (f Filter) Apply(messages []Message) []Message {
	if f.Empty() {
		return messages
	}

	var authorSet map[string]bool
	if len(f.Authors) > 0 {
		authorSet = make(map[string]bool, len(f.Authors))
		for _, a := range f.Authors {
			authorSet[a] = true
		}
	}

	out := make([]Message, 0, len(messages))
	for _, m := range messages {
		if authorSet != nil && !authorSet[m.Author] {
			continue
		}
		if f.Start != nil && m.Timestamp.Before(*f.Start) {
			continue
		}
		if f.End != nil && m.Timestamp.After(*f.End) {
			continue
		}
		if f.Sentiment != "" && m.Sentiment != f.Sentiment {
			continue
		}
		out = append(out, m)
	}
	return out
}
