package synthesis

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ainnoce10/ebf-backend/pkg/config"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.SynthesisConfig{
		APIKey:  "test-key",
		BaseURL: serverURL,
		Model:   "gemini-1.5-flash",
		Timeout: 2 * time.Second,
	})
}

func TestGenerateReturnsCandidateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key in query")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  Une synthèse.  "}]}}]}`))
	}))
	defer server.Close()

	text, err := newTestClient(server.URL).Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "Une synthèse." {
		t.Errorf("text = %q, want trimmed candidate", text)
	}
}

func TestGenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded"}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error on 429")
	}
}

func TestGenerateMissingKey(t *testing.T) {
	client := NewClient(config.SynthesisConfig{BaseURL: "http://localhost", Model: "m", Timeout: time.Second})
	if _, err := client.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestGenerateEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	if _, err := newTestClient(server.URL).Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error on empty candidates")
	}
}
