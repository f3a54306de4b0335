package deps

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCheck_EndpointUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/models" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Server", "ollama/0.6.2")
		_, _ = w.Write([]byte(`{"data":[{"id":"qwen2.5vl"}]}`))
	}))
	defer srv.Close()

	res := Check(context.Background(), srv.URL+"/v1/models", Options{Timeout: 2 * time.Second})
	if !res.Found || res.Err != nil {
		t.Fatalf("expected endpoint found, got %+v", res)
	}
	if res.VersionInfo != "HTTP 200 OK (ollama/0.6.2)" || res.Version != "0.6.2" {
		t.Fatalf("unexpected version info %q / %q", res.VersionInfo, res.Version)
	}
	if !strings.HasPrefix(res.Source, "GET ") {
		t.Fatalf("unexpected source %q", res.Source)
	}
}

func TestCheck_EndpointStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	res := Check(context.Background(), srv.URL, Options{Timeout: 2 * time.Second})
	var se *EndpointStatusError
	if res.Found || !errors.As(res.Err, &se) || se.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 status error, got found=%v err=%v", res.Found, res.Err)
	}
	if Kind(res.Err) != "failed" || res.RemediationHint == "" {
		t.Fatalf("unexpected kind %q / hint %q", Kind(res.Err), res.RemediationHint)
	}
}

func TestCheck_EndpointUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL + "/v1/models"
	srv.Close()

	res := Check(context.Background(), url, Options{Timeout: 2 * time.Second})
	if res.Found || !errors.Is(res.Err, ErrUnreachable) || Kind(res.Err) != "unreachable" {
		t.Fatalf("expected unreachable, got found=%v err=%v", res.Found, res.Err)
	}
	if !strings.Contains(res.RemediationHint, url) {
		t.Fatalf("hint should name the url: %q", res.RemediationHint)
	}

	hint := endpointHint("ollama", "http://localhost:11434/v1/models")
	if !strings.Contains(hint, "ollama serve") {
		t.Fatalf("ollama url should get ollama steps: %q", hint)
	}
}

func TestCheck_EndpointTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	start := time.Now()
	res := Check(context.Background(), srv.URL, Options{Timeout: 200 * time.Millisecond})
	if res.Found || !errors.Is(res.Err, ErrTimeout) {
		t.Fatalf("expected timeout, got found=%v err=%v", res.Found, res.Err)
	}
	if time.Since(start) > 2*time.Second {
		t.Fatalf("endpoint check ignored the deadline")
	}
}
