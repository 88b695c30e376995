package sentiment

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/filmshelf/filmshelf/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewHTTPClient(srv.URL, "test-key", 2*time.Second, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	return client
}

func TestHTTPClientLabel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/label" {
			t.Errorf("path = %s, want /label", r.URL.Path)
		}
		if r.Header.Get("X-API-Key") != "test-key" {
			t.Errorf("missing API key header")
		}
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Text != "a fine film" {
			t.Errorf("text = %q", req.Text)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"label":"POSITIVE"}`))
	})

	label, err := client.Label(context.Background(), "a fine film")
	if err != nil {
		t.Fatalf("label: %v", err)
	}
	if label != domain.SentimentPositive {
		t.Fatalf("label = %s, want POSITIVE", label)
	}
}

func TestHTTPClientLabelUnknownMapsToNeutral(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"label":"MIXED"}`))
	})

	label, err := client.Label(context.Background(), "hmm")
	if err != nil {
		t.Fatalf("label: %v", err)
	}
	if label != domain.SentimentNeutral {
		t.Fatalf("label = %s, want NEUTRAL", label)
	}
}

func TestHTTPClientLabelUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Label(context.Background(), "anything")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("error = %v, want ErrUnavailable", err)
	}
}
