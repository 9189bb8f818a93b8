package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/chatlens/chatlens/pkg/parser"
)

// dateLayouts accepted for start_date and end_date query parameters.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

type badParamError struct {
	name   string
	reason string
}

func (e *badParamError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.name, e.reason)
}

// filterFromQuery builds a message filter from the shared query parameters
// authors, start_date, end_date and sentiment.
func filterFromQuery(r *http.Request) (parser.Filter, error) {
	var f parser.Filter

	if raw := r.URL.Query().Get("authors"); raw != "" {
		for _, a := range strings.Split(raw, ",") {
			a = strings.TrimSpace(a)
			if a != "" {
				f.Authors = append(f.Authors, a)
			}
		}
	}

	start, err := parseDateParam(r, "start_date", false)
	if err != nil {
		return f, err
	}
	f.Start = start

	end, err := parseDateParam(r, "end_date", true)
	if err != nil {
		return f, err
	}
	f.End = end

	f.Sentiment = r.URL.Query().Get("sentiment")

	return f, nil
}

// parseDateParam parses a date query parameter. Date-only end bounds are
// widened to the end of that day so the bound stays inclusive.
func parseDateParam(r *http.Request, name string, isEnd bool) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	for i, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if isEnd && i == 0 {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return &t, nil
	}

	return nil, &badParamError{name: name, reason: "expected YYYY-MM-DD or RFC 3339"}
}

func boolParam(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &badParamError{name: name, reason: "expected a boolean"}
	}
	return v, nil
}

func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &badParamError{name: name, reason: "expected an integer"}
	}
	return v, nil
}
