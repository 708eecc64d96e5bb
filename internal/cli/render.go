package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/langcard/langcard/pkg/github"
	"github.com/langcard/langcard/pkg/render/card"
)

// defaultFetchTTL is how long GitHub responses are cached for CLI use.
const defaultFetchTTL = time.Hour

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output            string  // output file path ("" writes to stdout)
	layout            string  // "normal" or "compact"
	langsCount        int     // number of languages to show
	hide              string  // comma-separated language names to hide
	width             float64 // card width in pixels
	theme             string  // named theme
	titleColor        string  // hex override, no leading '#'
	textColor         string
	bgColor           string
	borderColor       string
	borderRadius      float64
	hideTitle         bool
	hideBorder        bool
	customTitle       string
	locale            string
	disableAnimations bool
	token             string // GitHub API token (falls back to GITHUB_TOKEN)
	refresh           bool   // bypass the response cache
}

// renderCommand creates the render command for generating a card to a file.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		langsCount: 5,
		layout:     "normal",
	}

	cmd := &cobra.Command{
		Use:   "render [username]",
		Short: "Render a top-languages card for a GitHub user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.layout, "layout", "l", opts.layout, "card layout: normal (default), compact")
	cmd.Flags().IntVar(&opts.langsCount, "langs-count", opts.langsCount, "number of languages to show (1-10)")
	cmd.Flags().StringVar(&opts.hide, "hide", "", "comma-separated language names to hide")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "card width in pixels")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "named theme: "+strings.Join(card.ThemeNames(), ", "))
	cmd.Flags().StringVar(&opts.titleColor, "title-color", "", "title color (hex, no '#')")
	cmd.Flags().StringVar(&opts.textColor, "text-color", "", "text color (hex, no '#')")
	cmd.Flags().StringVar(&opts.bgColor, "bg-color", "", "background color (hex, no '#')")
	cmd.Flags().StringVar(&opts.borderColor, "border-color", "", "border color (hex, no '#')")
	cmd.Flags().Float64Var(&opts.borderRadius, "border-radius", 0, "corner radius of the card")
	cmd.Flags().BoolVar(&opts.hideTitle, "hide-title", false, "hide the card title")
	cmd.Flags().BoolVar(&opts.hideBorder, "hide-border", false, "hide the card border")
	cmd.Flags().StringVar(&opts.customTitle, "custom-title", "", "override the card title")
	cmd.Flags().StringVar(&opts.locale, "locale", "", "title language (e.g. en, de, ja)")
	cmd.Flags().BoolVar(&opts.disableAnimations, "no-animations", false, "disable CSS animations")
	cmd.Flags().StringVar(&opts.token, "token", "", "GitHub API token (defaults to GITHUB_TOKEN)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the response cache")

	return cmd
}

// runRender fetches the user's languages and writes the rendered SVG.
func (c *CLI) runRender(cmd *cobra.Command, username string, opts *renderOpts) error {
	ctx := cmd.Context()

	layout, err := card.ParseLayout(opts.layout)
	if err != nil {
		return err
	}

	token := opts.token
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	client, err := github.NewClient(token, defaultFetchTTL)
	if err != nil {
		return err
	}

	p := newProgress(c.Logger)
	repos, err := client.TopLanguages(ctx, username, opts.refresh)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Fetched %d repositories for %s", len(repos), username))

	doc := card.TopLanguages(repos, card.Options{
		Username:   username,
		Layout:     layout,
		LangsCount: opts.langsCount,
		Hide:       splitList(opts.hide),
		CardWidth:  opts.width,
		Theme:      opts.theme,
		Colors: card.ThemeOverrides{
			Title:      opts.titleColor,
			Text:       opts.textColor,
			Background: opts.bgColor,
			Border:     opts.borderColor,
		},
		BorderRadius:      opts.borderRadius,
		Locale:            opts.locale,
		CustomTitle:       opts.customTitle,
		HideTitle:         opts.hideTitle,
		HideBorder:        opts.hideBorder,
		DisableAnimations: opts.disableAnimations,
	})

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := doc.WriteTo(out); err != nil {
		return err
	}

	if opts.output != "" {
		printSuccess("Generated %s", opts.output)
	}
	return nil
}

// splitList parses a comma-separated flag value into a slice.
// Empty items are dropped.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// openOutput opens the output file, or stdout when path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
