package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/langcard/langcard/pkg/cache"
	lcerrors "github.com/langcard/langcard/pkg/errors"
	"github.com/langcard/langcard/pkg/github"
	"github.com/langcard/langcard/pkg/langstats"
	"github.com/langcard/langcard/pkg/observability"
	"github.com/langcard/langcard/pkg/render/card"
)

// languageFetcher is the upstream dependency of the card handler.
// *github.Client implements it; tests substitute a stub.
type languageFetcher interface {
	TopLanguages(ctx context.Context, username string, refresh bool) ([]langstats.RepositoryLanguages, error)
}

// server holds the HTTP handler dependencies.
type server struct {
	fetcher languageFetcher
	cards   cache.Cache
	cfg     CacheConfig
	logger  *log.Logger
}

// serveCommand creates the serve command for running the card server.
func (c *CLI) serveCommand() *cobra.Command {
	var configPath, listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP card server",
		Long:  `Serve renders top-languages cards over HTTP at /api/top-langs. Rendered cards are cached per request so repeated loads skip the GitHub fetch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Listen = listen
			}
			return c.runServe(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to TOML config file")
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")

	return cmd
}

// runServe wires the dependencies and runs the HTTP server until the
// context is cancelled.
func (c *CLI) runServe(cmd *cobra.Command, cfg *Config) error {
	ctx := cmd.Context()

	client, err := github.NewClient(cfg.GitHub.Token, cfg.Cache.defaultTTL())
	if err != nil {
		return err
	}

	cards, err := newCardCache(cmd, cfg)
	if err != nil {
		return fmt.Errorf("create card cache: %w", err)
	}
	defer cards.Close()

	s := &server{
		fetcher: client,
		cards:   cards,
		cfg:     cfg.Cache,
		logger:  c.Logger,
	}

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           s.router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("Listening on %s", cfg.Listen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// router builds the chi router with middleware and routes.
func (s *server) router() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
	})
	r.Get("/api/top-langs", s.handleTopLangs)

	return r
}

// requestID assigns each request a UUID, echoes it in the X-Request-ID
// header, and attaches a logger carrying it to the request context.
func (s *server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		logger := s.logger.With("request_id", id)
		next.ServeHTTP(w, r.WithContext(withLogger(r.Context(), logger)))
	})
}

// logRequests logs method, path, status, and duration for each request.
func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		loggerFromContext(r.Context()).Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}

// handleTopLangs renders a top-languages card for the requested user.
// Failures are reported as an SVG error card so embedded images still
// display something useful.
func (s *server) handleTopLangs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := loggerFromContext(ctx)

	req, err := parseCardRequest(r)
	if err != nil {
		s.writeErrorCard(w, r, err)
		return
	}

	ttl := s.cacheTTL(r.URL.Query().Get("cache_seconds"))
	key := cache.CardKey(req.opts.Username, req.key)

	if data, hit, err := s.cards.Get(ctx, key); err == nil && hit {
		logger.Debug("card cache hit", "username", req.opts.Username)
		observability.Cache().OnCacheHit(ctx, "card")
		writeCard(w, data, ttl)
		return
	}
	observability.Cache().OnCacheMiss(ctx, "card")

	repos, err := s.fetcher.TopLanguages(ctx, req.opts.Username, false)
	if err != nil {
		logger.Warn("fetch failed", "username", req.opts.Username, "err", err)
		s.writeErrorCard(w, r, err)
		return
	}

	start := time.Now()
	doc := card.TopLanguages(repos, req.opts)
	data := []byte(doc.String())
	observability.Render().OnRenderComplete(ctx, string(req.opts.Layout), len(data), time.Since(start))

	if err := s.cards.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("card cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "card", len(data))
	}
	writeCard(w, data, ttl)
}

// cardRequest is a parsed /api/top-langs request.
type cardRequest struct {
	opts card.Options
	key  cache.CardKeyOpts
}

// parseCardRequest validates query parameters and builds render options.
func parseCardRequest(r *http.Request) (*cardRequest, error) {
	q := r.URL.Query()

	username := strings.TrimSpace(q.Get("username"))
	if err := lcerrors.ValidateUsername(username); err != nil {
		return nil, err
	}

	layout, err := card.ParseLayout(q.Get("layout"))
	if err != nil {
		return nil, err
	}

	overrides := card.ThemeOverrides{
		Title:      q.Get("title_color"),
		Text:       q.Get("text_color"),
		Background: q.Get("bg_color"),
		Border:     q.Get("border_color"),
	}
	for _, color := range []string{overrides.Title, overrides.Text, overrides.Background, overrides.Border} {
		if color == "" {
			continue
		}
		if err := lcerrors.ValidateHexColor(color); err != nil {
			return nil, err
		}
	}

	opts := card.Options{
		Username:          username,
		Layout:            layout,
		LangsCount:        parseInt(q.Get("langs_count")),
		Hide:              splitList(q.Get("hide")),
		CardWidth:         parseFloat(q.Get("card_width")),
		Theme:             q.Get("theme"),
		Colors:            overrides,
		BorderRadius:      parseFloat(q.Get("border_radius")),
		Locale:            q.Get("locale"),
		CustomTitle:       q.Get("custom_title"),
		HideTitle:         parseBool(q.Get("hide_title")),
		HideBorder:        parseBool(q.Get("hide_border")),
		DisableAnimations: parseBool(q.Get("disable_animations")),
	}

	return &cardRequest{
		opts: opts,
		key: cache.CardKeyOpts{
			Layout:            string(opts.Layout),
			LangsCount:        opts.LangsCount,
			Hide:              opts.Hide,
			CardWidth:         opts.CardWidth,
			Theme:             opts.Theme,
			TitleColor:        overrides.Title,
			TextColor:         overrides.Text,
			BackgroundColor:   overrides.Background,
			BorderColor:       overrides.Border,
			BorderRadius:      opts.BorderRadius,
			HideTitle:         opts.HideTitle,
			HideBorder:        opts.HideBorder,
			CustomTitle:       opts.CustomTitle,
			Locale:            opts.Locale,
			DisableAnimations: opts.DisableAnimations,
		},
	}, nil
}

// cacheTTL resolves the requested cache_seconds against the configured
// default and ceiling.
func (s *server) cacheTTL(requested string) time.Duration {
	seconds := s.cfg.DefaultSeconds
	if n := parseInt(requested); n > 0 {
		seconds = n
	}
	if seconds < s.cfg.DefaultSeconds {
		seconds = s.cfg.DefaultSeconds
	}
	if seconds > s.cfg.MaxSeconds {
		seconds = s.cfg.MaxSeconds
	}
	return time.Duration(seconds) * time.Second
}

// writeCard writes a rendered SVG with caching headers.
func writeCard(w http.ResponseWriter, data []byte, ttl time.Duration) {
	seconds := int(ttl / time.Second)
	w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d, s-maxage=%d, stale-while-revalidate=%d",
		seconds/2, seconds, maxCacheSeconds))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// writeErrorCard writes an SVG error card. The response is uncacheable
// and still uses status 200 so embedded <img> tags render it.
func (s *server) writeErrorCard(w http.ResponseWriter, r *http.Request, err error) {
	theme := card.ResolveTheme(r.URL.Query().Get("theme"), card.ThemeOverrides{})
	doc := card.ErrorCard(err, theme)

	w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = doc.WriteTo(w)
}

// parseInt parses a decimal query parameter, returning 0 on failure.
func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// parseFloat parses a float query parameter, returning 0 on failure.
func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// parseBool parses a boolean query parameter, returning false on failure.
func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return b
}
