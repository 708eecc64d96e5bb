package card

import (
	"fmt"

	"github.com/langcard/langcard/pkg/langstats"
	"github.com/langcard/langcard/pkg/render/card/layout"
	"github.com/langcard/langcard/pkg/render/svg"
)

const (
	// DefaultWidth is used when the request leaves the card width unset.
	DefaultWidth = 300.0

	// MinWidth is the floor applied to requested card widths.
	MinWidth = 230.0

	// rightPadding is reserved on the right of each row for the percentage
	// label in the normal layout.
	rightPadding = 95.0

	normalRowGap = 40.0
)

// ResolveWidth applies the card-width rules: non-positive or NaN requests
// fall back to the default, everything else is floored at the minimum.
func ResolveWidth(requested float64) float64 {
	if !(requested > 0) { // catches zero, negatives, and NaN
		return DefaultWidth
	}
	return max(requested, MinWidth)
}

// NormalHeight is the card height for a normal-layout selection of n
// languages. The formula holds for n = 0.
func NormalHeight(n int) float64 {
	return 45 + float64(n+1)*normalRowGap
}

// normalBody renders one row per selected language: name at the left, a
// proportional progress bar, and a percentage label right of the bar. Rows
// are stacked by the column flex with a fixed gap.
func normalBody(sel langstats.Selection, width float64) []*svg.Element {
	rows := make([]*svg.Element, 0, len(sel.Languages))
	for i, lang := range sel.Languages {
		rows = append(rows, normalRow(lang, sel.Total, width, i))
	}

	wrapper := svg.Translate(paddingX, 0).Attr("data-testid", "lang-items")
	wrapper.Child(layout.Flex(layout.Column, normalRowGap, nil, rows...)...)
	return []*svg.Element{wrapper}
}

func normalRow(lang langstats.Aggregated, total, width float64, index int) *svg.Element {
	percent := percentOf(lang.Size, total)
	barWidth := width - rightPadding

	row := svg.Group().
		Attr("class", "stagger").
		Attrf("style", "animation-delay: %dms", (index+3)*150)

	row.Child(
		svg.Text(2, 15, lang.Name).Attr("data-testid", "lang-name").Attr("class", "lang-name"),
		svg.Text(barWidth+10, 34, fmt.Sprintf("%.2f%%", percent)).Attr("class", "lang-name"),
		progressBar(0, 25, barWidth, lang.Color, percent),
	)
	return row
}

// progressBar draws a track with a fill scaled to percent of its width. The
// fill is clamped to [2,100]% so vanishing shares stay visible.
func progressBar(x, y, width float64, color string, percent float64) *svg.Element {
	track := svg.New("svg").AttrNum("width", width).AttrNum("x", x).AttrNum("y", y)

	fill := svg.New("svg").Attrf("width", "%s%%", svg.Num(layout.Clamp(percent, 2, 100)))
	fill.Child(svg.Rect(0, 0, width, 8, color).
		Attr("rx", "5").Attr("ry", "5").
		Attr("class", "lang-progress").
		Attr("data-testid", "lang-progress"))

	track.Child(
		svg.Rect(0, 0, width, 8, "#ddd").Attr("rx", "5").Attr("ry", "5"),
		fill,
	)
	return track
}

func percentOf(size, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return size / total * 100
}
