package card

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/langcard/langcard/pkg/langstats"
)

func TestCompactHeight(t *testing.T) {
	tests := []struct {
		repos int
		want  float64
	}{
		{0, 90},
		{1, 109},  // round(0.5) = 1
		{2, 109},  // round(1) = 1
		{3, 128},  // round(1.5) = 2
		{4, 128},
		{5, 147},
	}

	for _, tt := range tests {
		if got := CompactHeight(tt.repos); got != tt.want {
			t.Errorf("CompactHeight(%d) = %v, want %v", tt.repos, got, tt.want)
		}
	}
}

func TestRepoStrip_SegmentWidthsSumToCardWidth(t *testing.T) {
	// 60/25/15 split of 300: every segment stays above the boost floor, so
	// unboosted widths must sum exactly to the card width.
	repo := langstats.RepositoryLanguages{
		Name: "widgets",
		Languages: []langstats.LanguageSize{
			{Name: "Go", Color: "#00ADD8", Size: 60},
			{Name: "HTML", Color: "#e34c26", Size: 25},
			{Name: "Makefile", Color: "#427819", Size: 15},
		},
	}

	strip := repoStrip(repo, "octocat", 300, 0)
	segments := strip.FindAll("rect")
	// First rect is the mask rect.
	if len(segments) != 4 {
		t.Fatalf("strip has %d rects, want mask + 3 segments", len(segments))
	}

	var sum float64
	for _, seg := range segments[1:] {
		w, _ := seg.Lookup("width")
		f, err := strconv.ParseFloat(w, 64)
		if err != nil {
			t.Fatalf("segment width %q not numeric: %v", w, err)
		}
		sum += f
	}
	if math.Abs(sum-300) > 1e-9 {
		t.Errorf("segment widths sum to %v, want 300", sum)
	}
}

func TestRepoStrip_BoostsThinSegments(t *testing.T) {
	// 1% of 300 = 3px, below the floor: boosted to 13, pushing the total
	// past the card width. The mask hides the overflow; widths are not
	// renormalized.
	repo := langstats.RepositoryLanguages{
		Name: "sliver",
		Languages: []langstats.LanguageSize{
			{Name: "Go", Color: "#00ADD8", Size: 99},
			{Name: "Shell", Color: "#89e051", Size: 1},
		},
	}

	strip := repoStrip(repo, "octocat", 300, 0)
	segments := strip.FindAll("rect")[1:]

	var widths []float64
	var sum float64
	for _, seg := range segments {
		w, _ := seg.Lookup("width")
		f, _ := strconv.ParseFloat(w, 64)
		widths = append(widths, f)
		sum += f
	}

	if math.Abs(widths[1]-13) > 1e-9 {
		t.Errorf("thin segment width = %v, want 13 (3 + 10 boost)", widths[1])
	}
	if sum <= 300 {
		t.Errorf("boosted widths should nominally exceed the card width, sum = %v", sum)
	}

	mask := strip.Find("mask")
	if mask == nil {
		t.Fatal("strip has no clip mask")
	}
	if w, _ := mask.Find("rect").Lookup("width"); w != "300" {
		t.Errorf("mask width = %q, want card width 300", w)
	}
}

func TestRepoStrip_SegmentsMonotonicAndLinked(t *testing.T) {
	repo := langstats.RepositoryLanguages{
		Name: "tools",
		Languages: []langstats.LanguageSize{
			{Name: "Go", Color: "#00ADD8", Size: 50},
			{Name: "Rust", Color: "#dea584", Size: 30},
			{Name: "Shell", Color: "#89e051", Size: 20},
		},
	}

	strip := repoStrip(repo, "octocat", 300, 0)

	var lastX = math.Inf(-1)
	for _, seg := range strip.FindAll("rect")[1:] {
		xs, _ := seg.Lookup("x")
		x, _ := strconv.ParseFloat(xs, 64)
		if x <= lastX {
			t.Errorf("segment x %v not monotonically increasing after %v", x, lastX)
		}
		lastX = x
	}

	anchors := strip.FindAll("a")
	if len(anchors) != 3 {
		t.Fatalf("strip has %d anchors, want one per segment", len(anchors))
	}
	for _, a := range anchors {
		href, _ := a.Lookup("href")
		if href != "https://github.com/octocat/tools" {
			t.Errorf("segment href = %q, want repo link", href)
		}
	}
}

func TestCompactBody_StripOffsetsAndLegend(t *testing.T) {
	repos := []langstats.RepositoryLanguages{
		{Name: "a", Languages: []langstats.LanguageSize{{Name: "Go", Color: "#00ADD8", Size: 1}}},
		{Name: "b", Languages: []langstats.LanguageSize{{Name: "Rust", Color: "#dea584", Size: 1}}},
		{Name: "c"}, // no languages: no strip
	}
	agg := langstats.Aggregate(repos)

	body := compactBody(repos, agg, "octocat", 300)
	if len(body) != 2 {
		t.Fatalf("compactBody returned %d roots, want strips + legend", len(body))
	}

	strips := body[0].Children
	if len(strips) != 2 {
		t.Fatalf("rendered %d strips, want 2 (repo without languages dropped)", len(strips))
	}
	for i, want := range []string{"translate(0, 0)", "translate(0, 10)"} {
		if transform, _ := strips[i].Lookup("transform"); transform != want {
			t.Errorf("strip %d transform = %q, want %q", i, transform, want)
		}
	}

	legend := body[1]
	if n := len(legend.FindAll("circle")); n != 2 {
		t.Errorf("legend has %d dots, want 2", n)
	}
}

func TestLegendColumns_GapNeverBelowMinimum(t *testing.T) {
	agg := []langstats.Aggregated{
		{Name: "C", Color: "#555555", Size: 0.6},
		{Name: "Go", Color: "#00ADD8", Size: 0.4},
	}

	columns := legendColumns(agg)
	if len(columns) != 2 {
		t.Fatalf("legend built %d columns, want 2", len(columns))
	}

	// Short names measure far below the minimum gap of 150.
	transform, _ := columns[1].Lookup("transform")
	if transform != "translate(150, 0)" {
		t.Errorf("second column transform = %q, want translate(150, 0)", transform)
	}
}

func TestLegendColumns_GapFitsLongestLabel(t *testing.T) {
	long := strings.Repeat("W", 40) // wide enough to exceed the minimum
	agg := []langstats.Aggregated{
		{Name: long, Color: "#000000", Size: 0.5},
		{Name: "Go", Color: "#00ADD8", Size: 0.5},
	}

	columns := legendColumns(agg)
	transform, _ := columns[1].Lookup("transform")

	prefix := "translate("
	if !strings.HasPrefix(transform, prefix) {
		t.Fatalf("unexpected transform %q", transform)
	}
	gapStr := transform[len(prefix):strings.Index(transform, ",")]
	gap, err := strconv.ParseFloat(gapStr, 64)
	if err != nil {
		t.Fatalf("cannot parse gap from %q", transform)
	}
	if gap <= 150 {
		t.Errorf("gap %v should exceed the minimum for a long label", gap)
	}
}

func TestLegendColumns_Empty(t *testing.T) {
	if got := legendColumns(nil); got != nil {
		t.Errorf("empty aggregate should produce no legend columns, got %d", len(got))
	}
}
