package langstats

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func sampleRepos() []RepositoryLanguages {
	return []RepositoryLanguages{
		{
			Name: "alpha",
			Languages: []LanguageSize{
				{Name: "JavaScript", Color: "#f1e05a", Size: 80},
				{Name: "TypeScript", Color: "#2b7489", Size: 20},
			},
		},
		{
			Name: "beta",
			Languages: []LanguageSize{
				{Name: "TypeScript", Color: "#2b7489", Size: 50},
				{Name: "Go", Color: "#00ADD8", Size: 50},
			},
		},
	}
}

func TestNormalize_SharesSumToOne(t *testing.T) {
	for _, repo := range sampleRepos() {
		shares := Normalize(repo)

		var sum float64
		for _, s := range shares {
			if s.Repo != repo.Name {
				t.Errorf("share %q carries repo %q, want %q", s.Name, s.Repo, repo.Name)
			}
			sum += s.Size
		}
		if math.Abs(sum-1.0) > epsilon {
			t.Errorf("repo %q shares sum = %v, want 1.0", repo.Name, sum)
		}
	}
}

func TestNormalize_ZeroByteRepo(t *testing.T) {
	repo := RepositoryLanguages{
		Name: "empty-bytes",
		Languages: []LanguageSize{
			{Name: "Markdown", Color: "#083fa1", Size: 0},
			{Name: "Text", Color: "#ccc", Size: 0},
		},
	}

	for _, s := range Normalize(repo) {
		if s.Size != 0 {
			t.Errorf("zero-byte repo share for %q = %v, want 0", s.Name, s.Size)
		}
		if math.IsNaN(s.Size) || math.IsInf(s.Size, 0) {
			t.Errorf("zero-byte repo produced non-finite share for %q", s.Name)
		}
	}
}

func TestAggregate_TwoRepoScenario(t *testing.T) {
	got := Aggregate(sampleRepos())

	want := []Aggregated{
		{Name: "JavaScript", Color: "#f1e05a", Size: 0.80},
		{Name: "TypeScript", Color: "#2b7489", Size: 0.70},
		{Name: "Go", Color: "#00ADD8", Size: 0.50},
	}

	if len(got) != len(want) {
		t.Fatalf("Aggregate() returned %d languages, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Name != w.Name || got[i].Color != w.Color {
			t.Errorf("Aggregate()[%d] = %s/%s, want %s/%s", i, got[i].Name, got[i].Color, w.Name, w.Color)
		}
		if math.Abs(got[i].Size-w.Size) > epsilon {
			t.Errorf("Aggregate()[%d].Size = %v, want %v", i, got[i].Size, w.Size)
		}
	}
}

func TestAggregate_CommutativeInRepoOrder(t *testing.T) {
	repos := sampleRepos()
	reversed := []RepositoryLanguages{repos[1], repos[0]}

	a := Aggregate(repos)
	b := Aggregate(reversed)

	if len(a) != len(b) {
		t.Fatalf("order-dependent result lengths: %d vs %d", len(a), len(b))
	}

	sizes := func(langs []Aggregated) map[string]float64 {
		m := make(map[string]float64, len(langs))
		for _, l := range langs {
			m[l.Name+"/"+l.Color] = l.Size
		}
		return m
	}
	sa, sb := sizes(a), sizes(b)
	for k, v := range sa {
		if math.Abs(sb[k]-v) > epsilon {
			t.Errorf("size for %s differs by repo order: %v vs %v", k, v, sb[k])
		}
	}
}

func TestAggregate_SkipsEmptyRepos(t *testing.T) {
	repos := append(sampleRepos(), RepositoryLanguages{Name: "empty"})

	if got, want := len(Aggregate(repos)), 3; got != want {
		t.Errorf("Aggregate() with empty repo returned %d languages, want %d", got, want)
	}
}

func TestAggregate_SkipsMissingNameOrColor(t *testing.T) {
	repos := []RepositoryLanguages{
		{
			Name: "gamma",
			Languages: []LanguageSize{
				{Name: "Rust", Color: "#dea584", Size: 50},
				{Name: "Unknown", Color: "", Size: 25},
				{Name: "", Color: "#fff", Size: 25},
			},
		},
	}

	got := Aggregate(repos)
	if len(got) != 1 {
		t.Fatalf("Aggregate() returned %d languages, want 1", len(got))
	}
	// Skipped entries still count toward the denominator: 50/100, not 50/50.
	if math.Abs(got[0].Size-0.5) > epsilon {
		t.Errorf("Rust share = %v, want 0.5", got[0].Size)
	}
}

func TestAggregate_ColorMismatchFragments(t *testing.T) {
	repos := []RepositoryLanguages{
		{Name: "a", Languages: []LanguageSize{{Name: "Shell", Color: "#89e051", Size: 10}}},
		{Name: "b", Languages: []LanguageSize{{Name: "Shell", Color: "#000000", Size: 10}}},
	}

	got := Aggregate(repos)
	if len(got) != 2 {
		t.Fatalf("same name with different colors should stay separate, got %d entries", len(got))
	}
}

func TestAggregate_DoesNotAliasInput(t *testing.T) {
	repos := sampleRepos()
	got := Aggregate(repos)

	got[0].Size = 999
	if repos[0].Languages[0].Size != 80 {
		t.Error("mutating aggregate output corrupted the source records")
	}
}
