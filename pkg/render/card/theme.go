package card

import (
	"slices"
	"strings"
)

// Theme holds the four colors a card is drawn with. Values are CSS colors,
// normally "#rrggbb".
type Theme struct {
	Title      string
	Text       string
	Background string
	Border     string
}

// DefaultTheme is the light theme used when no theme is requested.
var DefaultTheme = Theme{
	Title:      "#2f80ed",
	Text:       "#434d58",
	Background: "#fffefe",
	Border:     "#e4e2e2",
}

var themes = map[string]Theme{
	"default":      DefaultTheme,
	"dark":         {Title: "#ffffff", Text: "#9f9f9f", Background: "#151515", Border: "#e4e2e2"},
	"radical":      {Title: "#fe428e", Text: "#a9fef7", Background: "#141321", Border: "#e4e2e2"},
	"merko":        {Title: "#abd200", Text: "#68b587", Background: "#0a0f0b", Border: "#e4e2e2"},
	"gruvbox":      {Title: "#fabd2f", Text: "#8ec07c", Background: "#282828", Border: "#e4e2e2"},
	"tokyonight":   {Title: "#70a5fd", Text: "#38bdae", Background: "#1a1b27", Border: "#e4e2e2"},
	"onedark":      {Title: "#e4bf7a", Text: "#df6d74", Background: "#282c34", Border: "#e4e2e2"},
	"cobalt":       {Title: "#e683d9", Text: "#75eeb2", Background: "#193549", Border: "#e4e2e2"},
	"synthwave":    {Title: "#e2e9ec", Text: "#e5289e", Background: "#2b213a", Border: "#e4e2e2"},
	"dracula":      {Title: "#ff6e96", Text: "#f8f8f2", Background: "#282a36", Border: "#e4e2e2"},
	"highcontrast": {Title: "#e7f216", Text: "#ffffff", Background: "#000000", Border: "#e4e2e2"},
}

// ThemeNames returns the sorted list of built-in theme names.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ThemeOverrides carries per-field color overrides from the render request.
// Values are hex digits without a leading '#'; empty fields keep the theme's
// color.
type ThemeOverrides struct {
	Title      string
	Text       string
	Background string
	Border     string
}

// ResolveTheme looks up a named theme (falling back to the default for
// unknown or empty names) and applies per-field overrides on top.
func ResolveTheme(name string, overrides ThemeOverrides) Theme {
	theme, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		theme = DefaultTheme
	}

	if overrides.Title != "" {
		theme.Title = "#" + overrides.Title
	}
	if overrides.Text != "" {
		theme.Text = "#" + overrides.Text
	}
	if overrides.Background != "" {
		theme.Background = "#" + overrides.Background
	}
	if overrides.Border != "" {
		theme.Border = "#" + overrides.Border
	}
	return theme
}
