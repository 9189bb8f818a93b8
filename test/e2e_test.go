package test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chatlens/chatlens/pkg/config"
	"github.com/chatlens/chatlens/pkg/detector"
	"github.com/chatlens/chatlens/pkg/emoji"
	"github.com/chatlens/chatlens/pkg/insights"
	"github.com/chatlens/chatlens/pkg/output"
	"github.com/chatlens/chatlens/pkg/parser"
	"github.com/chatlens/chatlens/pkg/sentiment"
	"github.com/chatlens/chatlens/pkg/stats"
	"github.com/chatlens/chatlens/pkg/webhook"
	"github.com/chatlens/chatlens/pkg/words"
)

const transcript = `Messages and calls are end-to-end encrypted.
[13/03/2023, 21:00:05] Alice: hello there everyone 😀
[13/03/2023, 21:01:10] Bob: hello back
[13/03/2023, 21:02:00] Alice: porco dio the deploy broke again
[13/03/2023, 21:02:30] Alice: dio cane
[13/03/2023, 21:03:00] Bob: <Media omitted>
[13/03/2023, 21:05:00] Bob: calm down
it will be fine
[14/03/2023, 09:15:00] Alice: anyone around today
`

// TestE2E_FullPipeline runs the whole analysis path the way the analyze
// command wires it: parse, attach sentiment, aggregate, derive insights,
// rank words, count emoji, format, send webhook.
func TestE2E_FullPipeline(t *testing.T) {
	ctx := context.Background()

	messages, err := parser.Parse(transcript, parser.Options{PreambleLines: 1})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(messages) != 7 {
		t.Fatalf("messages = %d, want 7", len(messages))
	}
	sentiment.Attach(messages)

	// Multi-line continuation is newline-joined.
	var calm *parser.Message
	for i := range messages {
		if strings.HasPrefix(messages[i].Content, "calm down") {
			calm = &messages[i]
		}
	}
	if calm == nil || calm.Content != "calm down\nit will be fine" {
		t.Fatalf("continuation message = %+v", calm)
	}

	det := detector.New().DetectFromLines(strings.Split(transcript, "\n"))
	if !det.HasMatch() {
		t.Fatal("no header shape detected")
	}
	if det.BestMatch().Format.Name != "Bracketed header" {
		t.Errorf("shape = %q", det.BestMatch().Format.Name)
	}

	result := stats.Aggregate(messages, stats.BucketDay, stats.Options{
		Patterns:    stats.FallbackPatterns("it"),
		LanguageTag: "it",
	})
	if result.TotalMessages != 7 || result.TotalAuthors != 2 {
		t.Fatalf("totals = %d/%d, want 7/2", result.TotalMessages, result.TotalAuthors)
	}
	if result.Profanity.Total != 2 {
		t.Errorf("profanity total = %d, want 2", result.Profanity.Total)
	}
	if len(result.Profanity.Streaks) != 1 || result.Profanity.Streaks[0].Count != 2 {
		t.Errorf("streaks = %+v, want one of length 2", result.Profanity.Streaks)
	}
	if len(result.TimeSeries) != 2 {
		t.Errorf("day buckets = %d, want 2", len(result.TimeSeries))
	}

	report := output.NewReport(result, "it", []string{"chat.txt"}, time.Now())
	report.Insights = insights.Generate(messages, "it")
	report.Emoji = emoji.Analyze(messages)
	if wr, err := words.Frequency(messages, words.Options{Limit: 20, MinLength: 3}); err == nil {
		report.Words = wr
	}

	if report.Summary.ProfanityMatches != 2 || report.Summary.MediaMessages != 1 {
		t.Errorf("summary = %+v", report.Summary)
	}
	if report.Emoji.TotalEmojis != 1 {
		t.Errorf("emoji = %d, want 1", report.Emoji.TotalEmojis)
	}
	if len(report.Insights) == 0 || report.Insights[0].Title != "Messaggi Totali" {
		t.Errorf("insights = %+v", report.Insights)
	}

	var buf bytes.Buffer
	formatter := output.NewTextFormatter(output.FormatOptions{})
	if err := formatter.Format(ctx, report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	for _, want := range []string{"=== ChatLens Transcript Report ===", "[PROFANITY]", "porco dio"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("text output missing %q", want)
		}
	}

	// Webhook receives the same report as JSON.
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
	}))
	defer server.Close()

	if !webhook.ShouldSend(config.WebhookTriggerOnMatches, report) {
		t.Fatal("webhook should fire with matches present")
	}
	resp := webhook.NewClient().Send(ctx, report, webhook.SendOptions{URL: server.URL})
	if !resp.Success() {
		t.Fatalf("webhook send failed: %+v", resp)
	}
	summary, ok := received["summary"].(map[string]interface{})
	if !ok || summary["profanity_matches"] != float64(2) {
		t.Errorf("webhook payload summary = %v", received["summary"])
	}
}

// TestE2E_FilterThenAggregate checks that query predicates compose with
// aggregation the way the API handlers apply them.
func TestE2E_FilterThenAggregate(t *testing.T) {
	messages, err := parser.Parse(transcript, parser.Options{PreambleLines: 1})
	if err != nil {
		t.Fatal(err)
	}

	start := time.Date(2023, 3, 14, 0, 0, 0, 0, time.UTC)
	filtered := parser.Filter{Start: &start}.Apply(messages)
	if len(filtered) != 1 {
		t.Fatalf("filtered = %d, want 1", len(filtered))
	}

	result := stats.Aggregate(filtered, stats.BucketDay, stats.Options{LanguageTag: "en"})
	if result.TotalMessages != 1 || result.Profanity.Total != 0 {
		t.Errorf("result = %d messages, %d matches", result.TotalMessages, result.Profanity.Total)
	}
}
