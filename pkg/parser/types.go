// Package parser turns raw chat transcript text into an ordered sequence of messages.
package parser

import "time"

// Message is one logical conversational event. A message may span several
// physical lines; Content holds the newline-joined body.
type Message struct {
	// Timestamp is the absolute time of the message header line.
	Timestamp time.Time `json:"timestamp"`

	// Author is the display name, or a synthesized label (e.g. "System")
	// for administrative events.
	Author string `json:"author"`

	// Content is the text body. Empty for media placeholder messages.
	Content string `json:"content"`

	// IsSystem marks group-management events (joins, removals, renames,
	// encryption notices). A system event is never a media message.
	IsSystem bool `json:"is_system"`

	// IsMedia marks messages whose content matched a media placeholder
	// marker. Content is cleared when set.
	IsMedia bool `json:"is_media"`

	// Sentiment and SentimentScore are attached after parsing by the
	// sentiment collaborator; the parser leaves them zero.
	Sentiment      string  `json:"sentiment,omitempty"`
	SentimentScore float64 `json:"sentiment_score,omitempty"`
}

// Authors returns the distinct non-system author names in first-appearance order.
func Authors(messages []Message) []string {
	seen := make(map[string]bool)
	var authors []string
	for _, m := range messages {
		if m.IsSystem || seen[m.Author] {
			continue
		}
		seen[m.Author] = true
		authors = append(authors, m.Author)
	}
	return authors
}
