// Package layout provides the pure geometry helpers behind card rendering:
// value clamping, text width estimation, slice chunking, and a flexbox-like
// one-dimensional arrangement of pre-rendered SVG fragments.
package layout

import "github.com/langcard/langcard/pkg/render/svg"

// Direction selects the axis a Flex arrangement accumulates along.
type Direction int

const (
	Row    Direction = iota // accumulate x
	Column                  // accumulate y
)

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

// Flex wraps each item in a positional transform offset by the running
// accumulated extent. The offset advances by gap plus the caller-supplied
// size for that item; a nil or short sizes slice contributes zero. Flex does
// not measure items itself: callers pre-compute sizes via [MeasureText] or
// [ChunkInto] where sizing matters.
func Flex(dir Direction, gap float64, sizes []float64, items ...*svg.Element) []*svg.Element {
	out := make([]*svg.Element, 0, len(items))

	var offset float64
	for i, item := range items {
		var wrapper *svg.Element
		if dir == Column {
			wrapper = svg.Translate(0, offset)
		} else {
			wrapper = svg.Translate(offset, 0)
		}
		out = append(out, wrapper.Child(item))

		offset += gap
		if i < len(sizes) {
			offset += sizes[i]
		}
	}
	return out
}

// ChunkInto splits items into n near-equal groups, earlier groups taking the
// remainder (5 items into 2 groups yields 3+2). n below 1 is treated as 1;
// empty input yields no groups.
func ChunkInto[T any](items []T, n int) [][]T {
	if len(items) == 0 {
		return nil
	}
	n = min(max(n, 1), len(items))

	chunks := make([][]T, 0, n)
	base := len(items) / n
	rem := len(items) % n

	start := 0
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		chunks = append(chunks, items[start:start+size])
		start += size
	}
	return chunks
}
