// Package httputil provides HTTP infrastructure for the GitHub client.
//
// # Overview
//
//   - [Cache]: File-based response caching with TTL
//   - [Retry]: Automatic retry with exponential backoff
//
// # Caching
//
// [Cache] stores upstream responses in the filesystem (~/.cache/langcard/)
// with configurable TTL. This keeps repeated card renders for the same user
// from hammering the GitHub API and eating into rate limits.
//
//	cache, err := httputil.NewCache("", 2*time.Hour)
//	ok, _ := cache.Get("github:langs:octocat", &langs)
//	if !ok {
//	    langs = fetchFromAPI()
//	    cache.Set("github:langs:octocat", langs)
//	}
//
// # Retry
//
// [Retry] re-runs an operation for transient failures (network errors, 5xx
// responses) wrapped in [RetryableError], with doubling delays between
// attempts. Non-retryable errors (404, malformed payloads) return
// immediately.
package httputil
