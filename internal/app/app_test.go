package app

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Adda-Baaj/placeholder-client/internal/config"
)

// newAPIServer serves canned JSONPlaceholder responses for user 1.
func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("username") != "" {
			io.WriteString(w, "[]")
			return
		}
		io.WriteString(w, `[{"id":1,"username":"Bret"}]`)
	})
	mux.HandleFunc("POST /users", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":11}`)
	})
	mux.HandleFunc("GET /users/1", func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"id":1,"username":"Bret"}`)
	})
	mux.HandleFunc("PUT /users/1", func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"id":1,"name":"Murka"}`)
	})
	mux.HandleFunc("DELETE /users/1", func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{}`)
	})
	mux.HandleFunc("GET /users/1/posts", func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `[{"id":9},{"id":10}]`)
	})
	mux.HandleFunc("GET /users/1/todos", func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `[{"userId":1,"id":1,"title":"open one","completed":false},{"userId":1,"id":2,"title":"done","completed":true}]`)
	})
	mux.HandleFunc("GET /posts/10/comments", func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `[{"postId":10,"id":1,"body":"nice"}]`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(t *testing.T, srv *httptest.Server) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		BaseURL:                srv.URL + "/users",
		OutputDir:              dir,
		LastPostStrategy:       config.LastPostMaxID,
		StorageType:            "bbolt",
		BBoltPath:              filepath.Join(dir, "data", "exports.db"),
		StorageTTL:             24 * time.Hour,
		StorageCleanupInterval: time.Hour,
	}
}

func TestRunDemoExercisesEveryOperation(t *testing.T) {
	srv := newAPIServer(t)
	cfg := testConfig(t, srv)

	var hookCalls atomic.Int32
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hookCalls.Add(1)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer hook.Close()
	cfg.PublishersFile = filepath.Join(t.TempDir(), "publishers.yaml")
	raw := "publishers:\n  - id: hook\n    type: http\n    http:\n      url: " + hook.URL + "\n"
	if err := os.WriteFile(cfg.PublishersFile, []byte(raw), 0o644); err != nil {
		t.Fatalf("write publishers file: %v", err)
	}

	var out bytes.Buffer
	a, err := New(context.Background(), cfg, nil, &out)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	if err := a.RunDemo(context.Background(), &out); err != nil {
		t.Fatalf("RunDemo: %v", err)
	}

	text := out.String()
	wantPath := filepath.Join(cfg.OutputDir, "user-1-post-10-comments.json")
	for _, want := range []string{
		"Comments saved to: " + wantPath,
		"Open tasks for user 1:",
		`"title": "open one"`,
		`{"id":11}`,
		"200",
		"[]",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("demo output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, `"title": "done"`) {
		t.Fatalf("completed todo printed:\n%s", text)
	}
	if _, err := os.Stat(wantPath); err != nil {
		t.Fatalf("comments file missing: %v", err)
	}

	recs, err := a.Store().Exports()
	if err != nil || len(recs) != 1 || recs[0].PostID != 10 {
		t.Fatalf("unexpected journal %#v err=%v", recs, err)
	}
	if hookCalls.Load() != 1 {
		t.Fatalf("expected one export notification, got %d", hookCalls.Load())
	}
}

func TestRunDemoContinuesAfterWriteFailure(t *testing.T) {
	srv := newAPIServer(t)
	cfg := testConfig(t, srv)
	cfg.OutputDir = filepath.Join(cfg.OutputDir, "missing", "dir")
	cfg.StorageType = "none"

	var out bytes.Buffer
	a, err := New(context.Background(), cfg, nil, &out)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	if err := a.RunDemo(context.Background(), &out); err != nil {
		t.Fatalf("RunDemo should continue after write failure: %v", err)
	}
	if !strings.Contains(out.String(), "Could not save comments") {
		t.Fatalf("write failure not reported:\n%s", out.String())
	}
	if !strings.Contains(out.String(), `{"id":11}`) {
		t.Fatalf("demo stopped early:\n%s", out.String())
	}
}

func TestRunDemoStopsOnTransportFailure(t *testing.T) {
	srv := newAPIServer(t)
	cfg := testConfig(t, srv)
	cfg.StorageType = "none"
	srv.Close()

	a, err := New(context.Background(), cfg, nil, io.Discard)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	if err := a.RunDemo(context.Background(), io.Discard); err == nil {
		t.Fatalf("expected transport failure to stop the demo")
	}
}

func TestNewRejectsBadPublishersFile(t *testing.T) {
	srv := newAPIServer(t)
	cfg := testConfig(t, srv)
	cfg.PublishersFile = filepath.Join(t.TempDir(), "absent.yaml")

	if _, err := New(context.Background(), cfg, nil, io.Discard); err == nil {
		t.Fatalf("expected error for missing publishers file")
	}
}
