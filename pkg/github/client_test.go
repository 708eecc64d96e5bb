package github

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/langcard/langcard/pkg/errors"
	"github.com/langcard/langcard/pkg/httputil"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cache, err := httputil.NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return &Client{
		http:     server.Client(),
		cache:    cache,
		endpoint: server.URL,
		token:    "test-token",
	}, server
}

const languagesPayload = `{
  "data": {
    "user": {
      "repositories": {
        "nodes": [
          {
            "name": "alpha",
            "languages": {
              "edges": [
                {"size": 80, "node": {"color": "#f1e05a", "name": "JavaScript"}},
                {"size": 20, "node": {"color": "#2b7489", "name": "TypeScript"}}
              ]
            }
          },
          {"name": "empty", "languages": {"edges": []}}
        ]
      }
    }
  }
}`

func TestTopLanguages_ParsesRepositories(t *testing.T) {
	var gotAuth, gotLogin string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var req graphQLRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotLogin, _ = req.Variables["login"].(string)
		w.Write([]byte(languagesPayload))
	})

	repos, err := client.TopLanguages(context.Background(), "octocat", false)
	if err != nil {
		t.Fatalf("TopLanguages() error = %v", err)
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization header = %q", gotAuth)
	}
	if gotLogin != "octocat" {
		t.Errorf("login variable = %q, want octocat", gotLogin)
	}

	if len(repos) != 2 {
		t.Fatalf("got %d repositories, want 2", len(repos))
	}
	if repos[0].Name != "alpha" || len(repos[0].Languages) != 2 {
		t.Errorf("first repo = %+v", repos[0])
	}
	if repos[0].Languages[0].Name != "JavaScript" || repos[0].Languages[0].Size != 80 {
		t.Errorf("first language = %+v", repos[0].Languages[0])
	}
	// Repositories without languages survive the fetch; the aggregator
	// drops them later.
	if repos[1].Name != "empty" || len(repos[1].Languages) != 0 {
		t.Errorf("second repo = %+v", repos[1])
	}
}

func TestTopLanguages_CachesResponses(t *testing.T) {
	requests := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(languagesPayload))
	})

	ctx := context.Background()
	if _, err := client.TopLanguages(ctx, "octocat", false); err != nil {
		t.Fatal(err)
	}
	if _, err := client.TopLanguages(ctx, "octocat", false); err != nil {
		t.Fatal(err)
	}
	if requests != 1 {
		t.Errorf("second call hit the network: %d requests", requests)
	}

	// refresh bypasses the cache.
	if _, err := client.TopLanguages(ctx, "octocat", true); err != nil {
		t.Fatal(err)
	}
	if requests != 2 {
		t.Errorf("refresh did not bypass cache: %d requests", requests)
	}
}

func TestTopLanguages_UserNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"user": null}, "errors": [{"type": "NOT_FOUND", "message": "Could not resolve to a User"}]}`))
	})

	_, err := client.TopLanguages(context.Background(), "ghost", false)
	if !errors.Is(err, errors.ErrCodeUserNotFound) {
		t.Errorf("error = %v, want USER_NOT_FOUND", err)
	}
}

func TestTopLanguages_UpstreamError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors": [{"type": "SOME_ERROR", "message": "boom"}]}`))
	})

	_, err := client.TopLanguages(context.Background(), "octocat", false)
	if !errors.Is(err, errors.ErrCodeUpstream) {
		t.Errorf("error = %v, want UPSTREAM_ERROR", err)
	}
}

func TestTopLanguages_InvalidUsernameFailsBeforeFetch(t *testing.T) {
	requests := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	tests := []struct {
		username string
		wantCode errors.Code
	}{
		{"", errors.ErrCodeMissingParam},
		{"../etc/passwd", errors.ErrCodeInvalidUsername},
		{"-leading", errors.ErrCodeInvalidUsername},
	}
	for _, tt := range tests {
		_, err := client.TopLanguages(context.Background(), tt.username, false)
		if !errors.Is(err, tt.wantCode) {
			t.Errorf("TopLanguages(%q) error = %v, want %s", tt.username, err, tt.wantCode)
		}
	}
	if requests != 0 {
		t.Errorf("invalid usernames reached the network: %d requests", requests)
	}
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		name      string
		code      int
		wantCode  errors.Code
		retryable bool
	}{
		{"ok", http.StatusOK, "", false},
		{"unauthorized", http.StatusUnauthorized, errors.ErrCodeUpstream, false},
		{"forbidden", http.StatusForbidden, errors.ErrCodeUpstream, false},
		{"rate limited", http.StatusTooManyRequests, errors.ErrCodeRateLimited, false},
		{"server error retries", http.StatusBadGateway, errors.ErrCodeNetwork, true},
		{"teapot", http.StatusTeapot, errors.ErrCodeUpstream, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkStatus(tt.code)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("checkStatus(%d) = %v, want nil", tt.code, err)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("checkStatus(%d) code = %v, want %s", tt.code, err, tt.wantCode)
			}
			var re *httputil.RetryableError
			if got := stderrors.As(err, &re); got != tt.retryable {
				t.Errorf("checkStatus(%d) retryable = %v, want %v", tt.code, got, tt.retryable)
			}
		})
	}
}
