package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chatlens/chatlens/pkg/config"
	"github.com/chatlens/chatlens/pkg/output"
)

func testReport(matches int) *output.Report {
	return &output.Report{
		Summary: output.Summary{
			TotalMessages:    10,
			TotalAuthors:     2,
			ProfanityMatches: matches,
		},
	}
}

func TestShouldSend(t *testing.T) {
	tests := []struct {
		name    string
		trigger config.WebhookTrigger
		matches int
		want    bool
	}{
		{"always fires without matches", config.WebhookTriggerAlways, 0, true},
		{"always fires with matches", config.WebhookTriggerAlways, 3, true},
		{"never suppresses matches", config.WebhookTriggerNever, 3, false},
		{"on_matches with matches", config.WebhookTriggerOnMatches, 3, true},
		{"on_matches without matches", config.WebhookTriggerOnMatches, 0, false},
		{"empty trigger behaves like on_matches", "", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldSend(tt.trigger, testReport(tt.matches)); got != tt.want {
				t.Errorf("ShouldSend() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSend(t *testing.T) {
	var gotAuth, gotContentType, gotUA string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotUA = r.Header.Get("User-Agent")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	resp := NewClient().Send(context.Background(), testReport(2), SendOptions{
		URL:   server.URL,
		Token: "secret",
	})

	if !resp.Success() {
		t.Fatalf("Success() = false, resp = %+v", resp)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d", resp.StatusCode)
	}
	if resp.Body != `{"ok":true}` {
		t.Errorf("Body = %q", resp.Body)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q, want Bearer secret", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotUA != "chatlens-webhook" {
		t.Errorf("User-Agent = %q", gotUA)
	}
	if _, ok := gotBody["summary"]; !ok {
		t.Error("payload missing summary")
	}
}

func TestSend_NoToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer server.Close()

	resp := NewClient().Send(context.Background(), testReport(0), SendOptions{URL: server.URL})
	if !resp.Success() {
		t.Fatalf("Success() = false, resp = %+v", resp)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestSend_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	resp := NewClient().Send(context.Background(), testReport(0), SendOptions{URL: server.URL})
	if resp.Success() {
		t.Error("Success() = true for 500 response")
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d", resp.StatusCode)
	}
	if resp.Error == nil {
		t.Error("Error = nil, want status error")
	}
}

func TestSend_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	resp := NewClient().Send(context.Background(), testReport(0), SendOptions{URL: server.URL})
	if resp.Success() {
		t.Error("Success() = true for refused connection")
	}
	if resp.Error == nil {
		t.Error("Error = nil, want transport error")
	}
}

func TestSend_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		server.Close()
	}()

	resp := NewClient().Send(context.Background(), testReport(0), SendOptions{
		URL:     server.URL,
		Timeout: 50 * time.Millisecond,
	})
	if resp.Error == nil {
		t.Error("Error = nil, want timeout")
	}
}

func TestResponse_Success(t *testing.T) {
	tests := []struct {
		name string
		resp Response
		want bool
	}{
		{"200", Response{StatusCode: 200}, true},
		{"204", Response{StatusCode: 204}, true},
		{"302", Response{StatusCode: 302}, false},
		{"404", Response{StatusCode: 404}, false},
		{"error set", Response{StatusCode: 200, Error: context.Canceled}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.resp.Success(); got != tt.want {
				t.Errorf("Success() = %v, want %v", got, tt.want)
			}
		})
	}
}
