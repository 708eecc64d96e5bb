package langstats

import (
	"cmp"
	"slices"
)

// Normalize converts one repository's byte counts into within-repository
// shares. A repository whose languages sum to zero bytes yields zero shares
// for every language rather than dividing by zero; downstream percentage
// math assumes finite shares in [0,1].
func Normalize(repo RepositoryLanguages) []NormalizedShare {
	var total int64
	for _, l := range repo.Languages {
		total += l.Size
	}

	shares := make([]NormalizedShare, 0, len(repo.Languages))
	for _, l := range repo.Languages {
		var share float64
		if total > 0 {
			share = float64(l.Size) / float64(total)
		}
		shares = append(shares, NormalizedShare{
			Name:  l.Name,
			Color: l.Color,
			Size:  share,
			Repo:  repo.Name,
		})
	}
	return shares
}

// Aggregate merges every repository's normalized shares into a single ranked
// list keyed by the exact (name, color) pair. Repositories with no languages
// are dropped. Shares with an empty name or color are skipped after having
// contributed to their repository's denominator, so their weight is lost
// from the merged list.
//
// The result is sorted descending by accumulated size; ties keep input
// encounter order. Returned entries are fresh values, never aliases of the
// input records.
func Aggregate(repos []RepositoryLanguages) []Aggregated {
	index := make(map[string]int)
	var merged []Aggregated

	for _, repo := range repos {
		if len(repo.Languages) == 0 {
			continue
		}
		for _, share := range Normalize(repo) {
			if share.Name == "" || share.Color == "" {
				continue
			}
			key := share.Name + "\x00" + share.Color
			if i, ok := index[key]; ok {
				merged[i].Size += share.Size
				continue
			}
			index[key] = len(merged)
			merged = append(merged, Aggregated{
				Name:  share.Name,
				Color: share.Color,
				Size:  share.Size,
			})
		}
	}

	// Stable so that ties keep encounter order.
	slices.SortStableFunc(merged, func(a, b Aggregated) int {
		return cmp.Compare(b.Size, a.Size)
	})
	return merged
}
