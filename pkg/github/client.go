package github

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/langcard/langcard/pkg/errors"
	"github.com/langcard/langcard/pkg/httputil"
	"github.com/langcard/langcard/pkg/langstats"
	"github.com/langcard/langcard/pkg/observability"
)

const (
	defaultEndpoint = "https://api.github.com/graphql"
	httpTimeout     = 10 * time.Second
)

// The query bounds itself to 100 repositories (GitHub's page cap) and 10
// languages per repository, which matches what a card can ever show.

const languagesQuery = `query userLanguages($login: String!) {
  user(login: $login) {
    repositories(ownerAffiliations: OWNER, isFork: false, first: 100) {
      nodes {
        name
        languages(first: 10, orderBy: {field: SIZE, direction: DESC}) {
          edges {
            size
            node {
              color
              name
            }
          }
        }
      }
    }
  }
}`

// Client provides access to the GitHub GraphQL API for language statistics.
// It handles HTTP requests with caching, automatic retries, and token
// authentication.
type Client struct {
	http     *http.Client
	cache    *httputil.Cache
	endpoint string
	token    string
}

// NewClient creates a GitHub client. The token is required by the GraphQL
// API; cacheTTL controls how long fetched language lists are reused before
// hitting the API again (0 disables expiry).
func NewClient(token string, cacheTTL time.Duration) (*Client, error) {
	cache, err := httputil.NewCache("", cacheTTL)
	if err != nil {
		return nil, err
	}
	return &Client{
		http:     &http.Client{Timeout: httpTimeout},
		cache:    cache.Namespace("github:langs:"),
		endpoint: defaultEndpoint,
		token:    token,
	}, nil
}

// TopLanguages fetches the per-repository language records for a user. If
// refresh is true, cached data is bypassed. The returned slices are ordered
// as the API returns them: repositories by the API's default order,
// languages within a repository by decreasing size.
func (c *Client) TopLanguages(ctx context.Context, username string, refresh bool) ([]langstats.RepositoryLanguages, error) {
	if err := errors.ValidateUsername(username); err != nil {
		return nil, err
	}

	observability.Fetch().OnFetchStart(ctx, username)
	start := time.Now()

	var repos []langstats.RepositoryLanguages
	err := c.cached(ctx, username, refresh, &repos, func() error {
		fetched, err := c.fetchLanguages(ctx, username)
		if err != nil {
			return err
		}
		repos = fetched
		return nil
	})
	observability.Fetch().OnFetchComplete(ctx, username, len(repos), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return repos, nil
}

// cached retrieves a value from cache or executes fetch (with retries) and
// caches the result.
func (c *Client) cached(ctx context.Context, key string, refresh bool, v *[]langstats.RepositoryLanguages, fetch func() error) error {
	if !refresh {
		if ok, _ := c.cache.Get(key, v); ok {
			observability.Cache().OnCacheHit(ctx, "response")
			return nil
		}
		observability.Cache().OnCacheMiss(ctx, "response")
	}
	if err := httputil.RetryWithBackoff(ctx, fetch); err != nil {
		return err
	}
	_ = c.cache.Set(key, *v)
	return nil
}

func (c *Client) fetchLanguages(ctx context.Context, username string) ([]langstats.RepositoryLanguages, error) {
	var resp languagesResponse
	if err := c.query(ctx, languagesQuery, map[string]any{"login": username}, &resp); err != nil {
		return nil, err
	}

	if len(resp.Errors) > 0 {
		e := resp.Errors[0]
		if e.Type == "NOT_FOUND" {
			return nil, errors.New(errors.ErrCodeUserNotFound, "user %s not found", username)
		}
		return nil, errors.New(errors.ErrCodeUpstream, "github api error: %s", e.Message)
	}
	if resp.Data.User == nil {
		return nil, errors.New(errors.ErrCodeUserNotFound, "user %s not found", username)
	}

	nodes := resp.Data.User.Repositories.Nodes
	repos := make([]langstats.RepositoryLanguages, 0, len(nodes))
	for _, node := range nodes {
		repo := langstats.RepositoryLanguages{Name: node.Name}
		for _, edge := range node.Languages.Edges {
			repo.Languages = append(repo.Languages, langstats.LanguageSize{
				Name:  edge.Node.Name,
				Color: edge.Node.Color,
				Size:  edge.Size,
			})
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

func (c *Client) query(ctx context.Context, query string, variables map[string]any, v any) error {
	payload, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode graphql request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "build graphql request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "github request failed")}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeUpstream, err, "malformed github response")
	}
	return nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return errors.New(errors.ErrCodeUpstream, "github rejected credentials (status %d)", code)
	case code == http.StatusTooManyRequests:
		return errors.New(errors.ErrCodeRateLimited, "github rate limit exceeded")
	case code >= 500:
		return &httputil.RetryableError{Err: errors.New(errors.ErrCodeNetwork, "github unavailable (status %d)", code)}
	default:
		return errors.New(errors.ErrCodeUpstream, "unexpected github status %d", code)
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type languagesResponse struct {
	Data struct {
		User *struct {
			Repositories struct {
				Nodes []struct {
					Name      string `json:"name"`
					Languages struct {
						Edges []struct {
							Size int64 `json:"size"`
							Node struct {
								Color string `json:"color"`
								Name  string `json:"name"`
							} `json:"node"`
						} `json:"edges"`
					} `json:"languages"`
				} `json:"nodes"`
			} `json:"repositories"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"errors"`
}
