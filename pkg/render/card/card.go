// Package card renders a user's language distribution as an SVG card.
//
// The package splits into three layers: a shell (title, border, background,
// theme, animations) shared by every card kind, two layout engines for the
// language body (normal rows and compact strips plus legend), and the
// orchestration that wires aggregation output into a finished document.
// Layout functions are total: any well-formed selection, including an empty
// one, produces a valid document.
package card

import (
	"fmt"

	"github.com/langcard/langcard/pkg/render/svg"
)

const (
	paddingX    = 25.0
	paddingY    = 35.0
	titleHeight = 30.0

	// DefaultBorderRadius matches the rounded corner of the card background.
	DefaultBorderRadius = 4.5
)

// Card is the shell wrapping a rendered body: border, background, title, and
// the CSS driving colors and animations.
type Card struct {
	width        float64
	height       float64
	borderRadius float64
	theme        Theme
	title        string
	bodyCSS      string
	hideTitle    bool
	hideBorder   bool
	animations   bool
}

// Option configures a Card.
type Option func(*Card)

// WithTheme sets the card's color theme.
func WithTheme(t Theme) Option { return func(c *Card) { c.theme = t } }

// WithTitle sets the header text.
func WithTitle(title string) Option { return func(c *Card) { c.title = title } }

// WithBorderRadius sets the corner radius of the card background.
func WithBorderRadius(r float64) Option { return func(c *Card) { c.borderRadius = r } }

// WithBodyCSS adds layout-specific CSS rules to the document's style block.
func WithBodyCSS(css string) Option { return func(c *Card) { c.bodyCSS = css } }

// WithHiddenTitle drops the header and shrinks the card by the title height.
func WithHiddenTitle() Option { return func(c *Card) { c.hideTitle = true } }

// WithHiddenBorder makes the border stroke fully transparent.
func WithHiddenBorder() Option { return func(c *Card) { c.hideBorder = true } }

// WithoutAnimations freezes all CSS animations at their final state.
func WithoutAnimations() Option { return func(c *Card) { c.animations = false } }

// New creates a card shell with the given outer dimensions. Hiding the title
// reduces the effective height by the title band.
func New(width, height float64, opts ...Option) *Card {
	c := &Card{
		width:        width,
		height:       height,
		borderRadius: DefaultBorderRadius,
		theme:        DefaultTheme,
		animations:   true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.hideTitle {
		c.height -= titleHeight
	}
	return c
}

// Width returns the card's outer width.
func (c *Card) Width() float64 { return c.width }

// Height returns the card's effective outer height after title adjustments.
func (c *Card) Height() float64 { return c.height }

// Render wraps the body elements with the card chrome and returns the
// complete document tree.
func (c *Card) Render(body ...*svg.Element) *svg.Element {
	doc := svg.Root(c.width, c.height).Attr("aria-labelledby", "titleId")

	doc.Child(svg.New("title").Attr("id", "titleId").SetText(c.title))
	doc.Child(svg.Style(c.css()))

	strokeOpacity := "1"
	if c.hideBorder {
		strokeOpacity = "0"
	}
	doc.Child(svg.New("rect").
		Attr("data-testid", "card-bg").
		Attr("x", "0.5").
		Attr("y", "0.5").
		AttrNum("rx", c.borderRadius).
		Attr("height", "99%").
		AttrNum("width", c.width-1).
		Attr("fill", c.theme.Background).
		Attr("stroke", c.theme.Border).
		Attr("stroke-opacity", strokeOpacity))

	if !c.hideTitle {
		doc.Child(svg.Translate(paddingX, paddingY).
			Attr("data-testid", "card-title").
			Child(svg.Text(0, 0, c.title).Attr("class", "header").Attr("data-testid", "header")))
	}

	bodyY := paddingY + 20
	if c.hideTitle {
		bodyY = paddingX
	}
	main := svg.Translate(0, bodyY).Attr("data-testid", "main-card-body")
	main.Child(body...)
	doc.Child(main)

	return doc
}

func (c *Card) css() string {
	css := fmt.Sprintf(`
    .header { font: 600 18px 'Segoe UI', Ubuntu, Sans-Serif; fill: %s; animation: fadeInAnimation 0.8s ease-in-out forwards; }
    %s`, c.theme.Title, c.bodyCSS)

	css += `
    .stagger { opacity: 0; animation: fadeInAnimation 0.3s ease-in-out forwards; }
    .lang-progress { animation: growWidthAnimation 0.6s ease-in-out forwards; }
    @keyframes fadeInAnimation { from { opacity: 0; } to { opacity: 1; } }
    @keyframes growWidthAnimation { from { width: 0; } to { width: 100%; } }
  `
	if !c.animations {
		css += `
    * { animation-duration: 0s !important; animation-delay: 0s !important; }
  `
	}
	return css
}
