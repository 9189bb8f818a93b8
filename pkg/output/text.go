package output

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "ChatLens: %d messages, %d authors, %d media\n",
		report.Summary.TotalMessages,
		report.Summary.TotalAuthors,
		report.Summary.MediaMessages)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== ChatLens Transcript Report ===")
	fmt.Fprintln(w)

	f.formatOverview(report, w)

	if report.Stats != nil {
		f.formatAuthors(report, w)
		f.formatProfanity(report, w)
	}

	if report.Words != nil && len(report.Words.Words) > 0 {
		f.formatWords(report, w)
	}

	if report.Emoji != nil && report.Emoji.TotalEmojis > 0 {
		f.formatEmoji(report, w)
	}

	if len(report.Insights) > 0 {
		f.formatInsights(report, w)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d messages from %d authors, %d media\n",
		report.Summary.TotalMessages,
		report.Summary.TotalAuthors,
		report.Summary.MediaMessages)

	if f.opts.Verbose {
		fmt.Fprintf(w, "Sources: %s\n", strings.Join(report.Metadata.Sources, ", "))
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}

func (f *TextFormatter) formatOverview(report *Report, w io.Writer) {
	fmt.Fprintf(w, "Messages: %d\n", report.Summary.TotalMessages)
	fmt.Fprintf(w, "Authors:  %d\n", report.Summary.TotalAuthors)

	if report.Stats != nil && report.Stats.DateRange.Start != nil && report.Stats.DateRange.End != nil {
		fmt.Fprintf(w, "Range:    %s to %s\n",
			report.Stats.DateRange.Start.Format("2006-01-02 15:04"),
			report.Stats.DateRange.End.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatAuthors(report *Report, w io.Writer) {
	if len(report.Stats.AuthorStats) == 0 {
		return
	}

	fmt.Fprintln(w, "[AUTHORS]")
	limit := len(report.Stats.AuthorStats)
	if !f.opts.Verbose && limit > 10 {
		limit = 10
	}
	for _, a := range report.Stats.AuthorStats[:limit] {
		fmt.Fprintf(w, "  %-24s %6d messages  avg %.1f chars", a.Author, a.MessageCount, a.AvgMessageLength)
		if a.MediaCount > 0 {
			fmt.Fprintf(w, "  %d media", a.MediaCount)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatProfanity(report *Report, w io.Writer) {
	p := report.Stats.Profanity
	if p == nil || p.Total == 0 {
		return
	}

	fmt.Fprintln(w, "[PROFANITY]")
	fmt.Fprintf(w, "  Total: %d (%.2f per 100 messages)\n", p.Total, p.TotalPerCapita)

	limit := len(p.ByPhrase)
	if !f.opts.Verbose && limit > 5 {
		limit = 5
	}
	for _, pc := range p.ByPhrase[:limit] {
		fmt.Fprintf(w, "  %-24s %d\n", pc.Phrase, pc.Count)
	}

	for _, s := range p.Streaks {
		fmt.Fprintf(w, "  Streak: %s x%d at %s\n", s.Author, s.Count, s.StartTimestamp.Format("2006-01-02 15:04"))
	}
	if len(p.ClimaxInstances) > 0 {
		fmt.Fprintf(w, "  Climaxes: %d (avg intensity %.2f)\n", len(p.ClimaxInstances), p.AvgClimaxIntensity)
	}
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatWords(report *Report, w io.Writer) {
	fmt.Fprintln(w, "[WORDS]")
	limit := len(report.Words.Words)
	if !f.opts.Verbose && limit > 10 {
		limit = 10
	}
	for _, t := range report.Words.Words[:limit] {
		fmt.Fprintf(w, "  %-24s %6d  %.2f%%\n", t.Word, t.Count, t.Frequency)
	}
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatEmoji(report *Report, w io.Writer) {
	fmt.Fprintln(w, "[EMOJI]")
	limit := len(report.Emoji.TopEmojis)
	if limit > 10 {
		limit = 10
	}
	for _, c := range report.Emoji.TopEmojis[:limit] {
		fmt.Fprintf(w, "  %s  %d\n", c.Emoji, c.Count)
	}
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatInsights(report *Report, w io.Writer) {
	fmt.Fprintln(w, "[INSIGHTS]")
	for _, in := range report.Insights {
		fmt.Fprintf(w, "  %s: %s\n", in.Title, in.Description)
	}
	fmt.Fprintln(w)
}
