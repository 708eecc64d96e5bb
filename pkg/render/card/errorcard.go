package card

import (
	"github.com/langcard/langcard/pkg/errors"
	"github.com/langcard/langcard/pkg/render/svg"
)

const (
	errorCardWidth  = 495.0
	errorCardHeight = 120.0
)

// ErrorCard renders a small card carrying a failure message, used by the
// HTTP handler so that broken <img> embeds still show something readable.
// No partial language card is ever produced: this replaces the card
// entirely.
func ErrorCard(err error, theme Theme) *svg.Element {
	secondary := secondaryMessage(err)

	doc := svg.Root(errorCardWidth, errorCardHeight)
	doc.Child(svg.Style(`
    .text { font: 600 16px 'Segoe UI', Ubuntu, Sans-Serif; fill: #2f80ed; }
    .small { font: 600 12px 'Segoe UI', Ubuntu, Sans-Serif; fill: #252525; }
  `))
	doc.Child(svg.New("rect").
		Attr("x", "0.5").
		Attr("y", "0.5").
		AttrNum("rx", DefaultBorderRadius).
		Attr("height", "99%").
		AttrNum("width", errorCardWidth-1).
		Attr("fill", theme.Background).
		Attr("stroke", theme.Border))
	doc.Child(svg.Translate(paddingX, 45).Child(
		svg.Text(0, 0, "Something went wrong!").Attr("class", "text"),
		svg.Text(0, 25, errors.UserMessage(err)).Attr("class", "small").Attr("data-testid", "message"),
		svg.Text(0, 45, secondary).Attr("class", "small"),
	))
	return doc
}

func secondaryMessage(err error) string {
	switch errors.GetCode(err) {
	case errors.ErrCodeUserNotFound:
		return "Make sure the provided username is not an organization"
	case errors.ErrCodeRateLimited:
		return "You can deploy your own instance to avoid shared rate limits"
	case errors.ErrCodeMissingParam, errors.ErrCodeInvalidUsername:
		return "Pass a valid GitHub username as ?username="
	default:
		return "Please try again later"
	}
}
