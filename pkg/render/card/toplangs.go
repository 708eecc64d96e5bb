package card

import (
	"fmt"
	"strings"

	"github.com/langcard/langcard/pkg/errors"
	"github.com/langcard/langcard/pkg/langstats"
	"github.com/langcard/langcard/pkg/render/svg"
)

// Layout selects the visual encoding of the language distribution.
type Layout string

const (
	LayoutNormal  Layout = "normal"
	LayoutCompact Layout = "compact"
)

// ParseLayout validates a layout selector, treating empty as normal.
func ParseLayout(s string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(s))) {
	case "", LayoutNormal:
		return LayoutNormal, nil
	case LayoutCompact:
		return LayoutCompact, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidLayout, "unknown layout %q (want normal or compact)", s)
	}
}

// Options is the render configuration for a top-languages card. The zero
// value means: normal layout, default width, five languages, default theme,
// English title, animations on.
type Options struct {
	Username string

	Layout     Layout
	LangsCount int      // clamped to [1,10]; 0 means default (5)
	Hide       []string // language names, case/whitespace-insensitive
	CardWidth  float64  // 0 means default; floored at MinWidth

	Theme        string
	Colors       ThemeOverrides
	BorderRadius float64 // 0 means default

	Locale      string
	CustomTitle string

	HideTitle         bool
	HideBorder        bool
	DisableAnimations bool
}

// TopLanguages aggregates the repositories and renders the complete card
// document. It is total over well-formed input: an empty repository list
// produces a valid card with zero language rows.
func TopLanguages(repos []langstats.RepositoryLanguages, opts Options) *svg.Element {
	width := ResolveWidth(opts.CardWidth)

	count := opts.LangsCount
	if count == 0 {
		count = langstats.DefaultCount
	}

	agg := langstats.Aggregate(repos)
	sel := langstats.SelectTop(agg, opts.Hide, count)

	theme := ResolveTheme(opts.Theme, opts.Colors)

	var body []*svg.Element
	var height float64
	switch opts.Layout {
	case LayoutCompact:
		body = compactBody(repos, agg, opts.Username, width)
		height = CompactHeight(countNonEmpty(repos))
	default:
		body = normalBody(sel, width)
		height = NormalHeight(len(sel.Languages))
	}

	cardOpts := []Option{
		WithTheme(theme),
		WithTitle(TitleFor(opts.Locale, opts.CustomTitle)),
		WithBodyCSS(fmt.Sprintf(`.lang-name { font: 400 11px 'Segoe UI', Ubuntu, Sans-Serif; fill: %s; }`, theme.Text)),
	}
	if opts.BorderRadius > 0 {
		cardOpts = append(cardOpts, WithBorderRadius(opts.BorderRadius))
	}
	if opts.HideTitle {
		cardOpts = append(cardOpts, WithHiddenTitle())
	}
	if opts.HideBorder {
		cardOpts = append(cardOpts, WithHiddenBorder())
	}
	if opts.DisableAnimations {
		cardOpts = append(cardOpts, WithoutAnimations())
	}

	return New(width, height, cardOpts...).Render(body...)
}

func countNonEmpty(repos []langstats.RepositoryLanguages) int {
	n := 0
	for _, r := range repos {
		if len(r.Languages) > 0 {
			n++
		}
	}
	return n
}
