package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chatlens/chatlens/pkg/config"
	"github.com/chatlens/chatlens/pkg/emoji"
	"github.com/chatlens/chatlens/pkg/insights"
	"github.com/chatlens/chatlens/pkg/output"
	"github.com/chatlens/chatlens/pkg/parser"
	"github.com/chatlens/chatlens/pkg/sentiment"
	"github.com/chatlens/chatlens/pkg/stats"
	"github.com/chatlens/chatlens/pkg/webhook"
	"github.com/chatlens/chatlens/pkg/words"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// AnalyzeOptions holds command-line options for the analyze command.
type AnalyzeOptions struct {
	Config    string
	Output    string
	Language  string
	TimeGroup string
	Authors   []string
	StartDate string
	EndDate   string
	Sentiment string
	ByAuthor  bool
	TopWords  int
	Verbose   bool
	Quiet     bool

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	opts := &AnalyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <transcript-file>...",
		Short: "Analyze chat transcripts",
		Long: `Analyze one or more exported transcript files.

Multiple files are merged into a single chronological stream before
analysis, so a conversation exported in pieces can be analyzed whole.

Exit codes:
  0 - Analysis completed, no tracked phrases found
  1 - Analysis completed, tracked phrases found
  2 - Configuration or runtime error`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file (YAML)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringVarP(&opts.Language, "language", "l", "", "Content language (en|it), detected when empty")
	cmd.Flags().StringVar(&opts.TimeGroup, "time-group", "day", "Time series bucket (hour|day|week|month)")
	cmd.Flags().StringSliceVar(&opts.Authors, "author", nil, "Limit analysis to author(s) (can be repeated)")
	cmd.Flags().StringVar(&opts.StartDate, "start-date", "", "Ignore messages before this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.EndDate, "end-date", "", "Ignore messages after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.Sentiment, "sentiment", "", "Limit analysis to one sentiment")
	cmd.Flags().BoolVar(&opts.ByAuthor, "by-author", false, "Include per-author time series")
	cmd.Flags().IntVar(&opts.TopWords, "top-words", 20, "Number of ranked words in the report")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show full breakdowns, not just highlights")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "on_matches", "When to fire webhook (on_matches|always|never)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *AnalyzeOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		return err
	}

	files, err := parser.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding transcript paths: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no transcript files matched: %v", args)
	}

	messages, err := loadTranscripts(files, cfg.Parser.PreambleLines)
	if err != nil {
		return err
	}
	sentiment.Attach(messages)

	language := opts.Language
	if language == "" {
		language = cfg.Parser.Language
	}
	if language == "" {
		language = detectLanguage(files)
	}

	filter, err := buildFilter(opts)
	if err != nil {
		return err
	}
	messages = filter.Apply(messages)

	bucket, err := stats.ParseBucket(opts.TimeGroup)
	if err != nil {
		return err
	}

	var patterns *stats.PatternSet
	if cfg.Patterns.Dir != "" {
		patterns = stats.LoadPatterns(cfg.Patterns.Dir, language)
	} else {
		patterns = stats.FallbackPatterns(language)
	}

	result := stats.Aggregate(messages, bucket, stats.Options{
		GroupByAuthor: opts.ByAuthor,
		Patterns:      patterns,
		LanguageTag:   language,
	})

	report := output.NewReport(result, language, files, start)
	report.Insights = insights.Generate(messages, language)
	report.Emoji = emoji.Analyze(messages)
	if wordResult, err := words.Frequency(messages, words.Options{Limit: opts.TopWords, MinLength: 3}); err == nil {
		report.Words = wordResult
	}

	if !filter.Empty() && filter.Start != nil && filter.End != nil {
		report.Metadata.TimeRange = &output.TimeRange{Start: *filter.Start, End: *filter.End}
	}

	formatter, err := createFormatter(opts.Output, output.FormatOptions{Verbose: opts.Verbose, Quiet: opts.Quiet})
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// Send webhooks (errors logged but don't fail analysis)
	sendWebhooks(ctx, cfg, opts, report)

	if report.Summary.ProfanityMatches > 0 {
		ExitCode = 1
	}

	return nil
}

func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path == "" {
		cfg, err := config.FromEnvironment()
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}
	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func buildFilter(opts *AnalyzeOptions) (parser.Filter, error) {
	f := parser.Filter{
		Authors:   opts.Authors,
		Sentiment: opts.Sentiment,
	}

	if opts.StartDate != "" {
		t, err := time.Parse("2006-01-02", opts.StartDate)
		if err != nil {
			return f, fmt.Errorf("invalid start-date %q: %w", opts.StartDate, err)
		}
		f.Start = &t
	}

	if opts.EndDate != "" {
		t, err := time.Parse("2006-01-02", opts.EndDate)
		if err != nil {
			return f, fmt.Errorf("invalid end-date %q: %w", opts.EndDate, err)
		}
		t = t.Add(24*time.Hour - time.Nanosecond)
		f.End = &t
	}

	return f, nil
}

func createFormatter(name string, formatOpts output.FormatOptions) (output.Formatter, error) {
	switch name {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", name)
	}
}

// sendWebhooks sends the report to all configured webhooks.
// Errors are logged to stderr but don't fail the analysis.
func sendWebhooks(ctx context.Context, cfg *config.Config, opts *AnalyzeOptions, report *output.Report) {
	webhooks := collectWebhooks(cfg, opts)
	if len(webhooks) == 0 {
		return
	}

	client := webhook.NewClient()

	for _, wh := range webhooks {
		if !webhook.ShouldSend(wh.Trigger, report) {
			continue
		}

		resp := client.Send(ctx, report, webhook.SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
		})

		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		if resp.Success() {
			fmt.Fprintf(os.Stderr, "Webhook %s: sent (%d, %s)\n", name, resp.StatusCode, resp.Duration)
		} else {
			fmt.Fprintf(os.Stderr, "Webhook %s: failed (%v)\n", name, resp.Error)
		}
	}
}

// collectWebhooks merges config file webhooks with the CLI webhook.
func collectWebhooks(cfg *config.Config, opts *AnalyzeOptions) []config.WebhookConfig {
	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)
	webhooks = append(webhooks, cfg.Webhooks...)

	if opts.WebhookURL != "" {
		trigger := config.WebhookTrigger(opts.WebhookTrigger)
		if trigger == "" {
			trigger = config.WebhookTriggerOnMatches
		}

		webhooks = append(webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: trigger,
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	return webhooks
}
