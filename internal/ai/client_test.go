package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newServerClient returns a Client pointed at a test server running handler.
func newServerClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, APIKey: "test-key", Model: "test-model"})
}

func TestComplete_Success_ReturnsContentVerbatim(t *testing.T) {
	var gotAuth string
	var gotBody chatRequest

	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  two words  "}}]}`))
	})

	res := c.Complete(context.Background(), "Explain this clearly:\nhi")
	if res.Degraded {
		t.Fatalf("unexpected degraded result: %+v", res)
	}
	if res.Text != "  two words  " {
		t.Fatalf("content not verbatim: %q", res.Text)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("missing bearer credential: %q", gotAuth)
	}
	if gotBody.Model != "test-model" {
		t.Fatalf("model = %q", gotBody.Model)
	}
	if len(gotBody.Messages) != 1 || gotBody.Messages[0].Role != "user" {
		t.Fatalf("expected a single user message, got %+v", gotBody.Messages)
	}
}

func TestComplete_NonOKStatus_Degrades(t *testing.T) {
	c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	})
	res := c.Complete(context.Background(), "p")
	if !res.Degraded || res.Text != PlaceholderUnavailable {
		t.Fatalf("want unavailable placeholder, got %+v", res)
	}
}

func TestComplete_EmptyBody_Degrades(t *testing.T) {
	for _, body := range []string{"", "null", "  \n"} {
		c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})
		res := c.Complete(context.Background(), "p")
		if !res.Degraded || res.Text != PlaceholderEmpty {
			t.Fatalf("body %q: want empty placeholder, got %+v", body, res)
		}
	}
}

func TestComplete_MalformedOrMissingFields_Degrades(t *testing.T) {
	for _, body := range []string{
		`{not json`,
		`{"choices":[]}`,
		`{"choices":[{"message":{}}]}`,
		`{"unexpected":true}`,
	} {
		c := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})
		res := c.Complete(context.Background(), "p")
		if !res.Degraded || res.Text != PlaceholderUnavailable {
			t.Fatalf("body %q: want unavailable placeholder, got %+v", body, res)
		}
	}
}

func TestComplete_NetworkError_Degrades(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // connection refused from here on

	c := NewClient(Config{BaseURL: url})
	res := c.Complete(context.Background(), "p")
	if !res.Degraded || res.Text != PlaceholderUnavailable {
		t.Fatalf("want unavailable placeholder, got %+v", res)
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Config{APIKey: "k"})
	if c.cfg.BaseURL != DefaultBaseURL {
		t.Fatalf("BaseURL default = %q", c.cfg.BaseURL)
	}
	if c.cfg.Model != DefaultModel {
		t.Fatalf("Model default = %q", c.cfg.Model)
	}
}
