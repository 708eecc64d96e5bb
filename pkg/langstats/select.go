package langstats

import "strings"

const (
	// DefaultCount is how many languages a card shows when unspecified.
	DefaultCount = 5

	minCount = 1
	maxCount = 10
)

// SelectTop filters out hidden languages and truncates to the top count
// entries. Count is clamped to [1,10] regardless of the requested value so
// the layout never grows unbounded.
//
// Hide-list entries match language names case-insensitively with surrounding
// whitespace trimmed, and filtering happens before truncation: a hidden
// language never consumes one of the top-N slots.
//
// The returned Total is the sum of the selected sizes only; it is the
// denominator for percentage labels, not a byte count.
func SelectTop(aggregated []Aggregated, hide []string, count int) Selection {
	count = min(max(count, minCount), maxCount)

	hidden := make(map[string]struct{}, len(hide))
	for _, h := range hide {
		hidden[normalizeName(h)] = struct{}{}
	}

	var sel Selection
	for _, lang := range aggregated {
		if _, ok := hidden[normalizeName(lang.Name)]; ok {
			continue
		}
		sel.Languages = append(sel.Languages, lang)
		sel.Total += lang.Size
		if len(sel.Languages) == count {
			break
		}
	}
	return sel
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
