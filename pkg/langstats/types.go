package langstats

// LanguageSize is one (language, byte count) record for a single repository,
// as reported by the fetch boundary. Color is the upstream display color
// ("#f1e05a" style) and may be empty for languages without one.
type LanguageSize struct {
	Name  string
	Color string
	Size  int64
}

// RepositoryLanguages holds the ordered language records for one repository.
// Records arrive ordered by decreasing size; this package does not re-sort
// them at the per-repository stage.
type RepositoryLanguages struct {
	Name      string
	Languages []LanguageSize
}

// NormalizedShare is a language's within-repository share: its byte count
// divided by that repository's total byte count, a value in [0,1].
type NormalizedShare struct {
	Name  string
	Color string
	Size  float64
	Repo  string
}

// Aggregated is the cross-repository accumulation unit: Size is the sum of
// within-repository shares over every repository containing the language.
type Aggregated struct {
	Name  string
	Color string
	Size  float64
}

// Selection is the hide-filtered, top-N-truncated, size-sorted subset of
// aggregated languages actually rendered, plus the sum of their sizes used
// as the percentage-normalization denominator in the normal layout.
type Selection struct {
	Languages []Aggregated
	Total     float64
}
