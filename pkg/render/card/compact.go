package card

import (
	"fmt"
	"math"

	"github.com/langcard/langcard/pkg/langstats"
	"github.com/langcard/langcard/pkg/render/card/layout"
	"github.com/langcard/langcard/pkg/render/svg"
)

const (
	stripHeight = 8.0
	stripGap    = 10.0

	// minSegmentWidth is the visibility floor for strip segments: anything
	// thinner gets widened so slivers stay visible and clickable.
	minSegmentWidth = 10.0

	legendEntryGap  = 25.0
	legendMinColGap = 150.0
	legendFontSize  = 11.0
)

// CompactHeight is the card height for a compact layout over r repositories
// that have at least one language.
func CompactHeight(r int) float64 {
	return 90 + math.Round(float64(r)/2)*19
}

// compactBody renders one stacked-segment strip per repository plus a
// two-column dot legend of the full merged language list.
func compactBody(repos []langstats.RepositoryLanguages, agg []langstats.Aggregated, username string, width float64) []*svg.Element {
	var strips []*svg.Element
	for _, repo := range repos {
		if len(repo.Languages) == 0 {
			continue
		}
		strips = append(strips, repoStrip(repo, username, width, len(strips)))
	}

	// Strips are drawn nearly flush: each offset a fixed increment from the
	// previous, not one-per-gap like the normal layout.
	body := svg.Group().Attr("data-testid", "lang-strips")
	body.Child(layout.Flex(layout.Column, stripGap, nil, strips...)...)

	legendY := stripHeight + stripGap*float64(len(strips)) + 14
	legend := svg.Translate(paddingX, legendY).Attr("data-testid", "lang-legend")
	legend.Child(legendColumns(agg)...)

	return []*svg.Element{body, legend}
}

// repoStrip renders one repository as a horizontal run of colored segments,
// one per language, clipped by a rounded-rect mask of the card width.
//
// Segment widths below the visibility floor are boosted, which can push the
// cumulative width past the mask; the mask hides the overflow instead of the
// widths being renormalized. That keeps thin slivers clickable at the cost
// of slightly skewed proportions for very fragmented repositories.
func repoStrip(repo langstats.RepositoryLanguages, username string, width float64, index int) *svg.Element {
	maskID := fmt.Sprintf("strip-mask-%d", index)

	mask := svg.New("mask").Attr("id", maskID).Child(
		svg.Rect(0, 0, width, stripHeight, "white").Attr("rx", "5"),
	)

	segments := svg.Group().Attrf("mask", "url(#%s)", maskID)
	var x float64
	for _, share := range langstats.Normalize(repo) {
		w := share.Size * width
		if w < minSegmentWidth {
			w += minSegmentWidth
		}

		segment := svg.Rect(x, 0, w, stripHeight, segmentColor(share.Color))
		link := svg.Anchor(fmt.Sprintf("https://github.com/%s/%s", username, repo.Name))
		segments.Child(link.Child(segment))
		x += w
	}

	return svg.Group().Child(mask, segments)
}

// legendColumns renders the merged language list as dot+label pairs split
// into two side-by-side columns. The column gap reserves room for the
// longest label so it is never clipped by its neighbor, regardless of font
// or locale.
func legendColumns(agg []langstats.Aggregated) []*svg.Element {
	if len(agg) == 0 {
		return nil
	}

	var total float64
	for _, lang := range agg {
		total += lang.Size
	}

	var longest string
	for _, lang := range agg {
		if len(lang.Name) > len(longest) {
			longest = lang.Name
		}
	}
	var longestLabel string
	for _, lang := range agg {
		if lang.Name == longest {
			longestLabel = legendLabel(lang, total)
			break
		}
	}

	columns := make([]*svg.Element, 0, 2)
	for _, chunk := range layout.ChunkInto(agg, 2) {
		entries := make([]*svg.Element, 0, len(chunk))
		for i, lang := range chunk {
			entries = append(entries, legendEntry(lang, total, i))
		}
		col := svg.Group()
		col.Child(layout.Flex(layout.Column, legendEntryGap, nil, entries...)...)
		columns = append(columns, col)
	}

	gap := max(legendMinColGap, 20+layout.MeasureText(longestLabel, legendFontSize))
	return layout.Flex(layout.Row, gap, nil, columns...)
}

func legendEntry(lang langstats.Aggregated, total float64, index int) *svg.Element {
	return svg.Group().
		Attr("class", "stagger").
		Attrf("style", "animation-delay: %dms", (index+3)*150).
		Child(
			svg.Circle(5, 6, 5, segmentColor(lang.Color)),
			svg.Text(15, 10, legendLabel(lang, total)).
				Attr("data-testid", "lang-name").
				Attr("class", "lang-name"),
		)
}

func legendLabel(lang langstats.Aggregated, total float64) string {
	return fmt.Sprintf("%s %.2f%%", lang.Name, percentOf(lang.Size, total))
}

// segmentColor falls back to a neutral grey for languages without a color.
func segmentColor(color string) string {
	if color == "" {
		return "#858585"
	}
	return color
}
