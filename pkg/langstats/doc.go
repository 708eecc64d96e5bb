// Package langstats merges per-repository language byte counts into a single
// ranked, deduplicated, percentage-ready language distribution.
//
// The pipeline is a pure, single-pass transformation:
//
//	repos := []langstats.RepositoryLanguages{...}   // from the fetch boundary
//	agg := langstats.Aggregate(repos)               // ranked cross-repo totals
//	sel := langstats.SelectTop(agg, hide, count)    // hide-filtered top N
//
// Sizes flow through three distinct units: raw byte counts per repository,
// within-repository shares in [0,1], and cross-repository sums of shares.
// The aggregated size of a language is the sum of its shares across every
// repository that contains it, not a byte count.
//
// Languages are identified by the exact (name, color) pair. A language whose
// configured color differs between repositories fragments into separate
// entries; this mirrors the upstream data and is deliberately not coalesced.
package langstats
