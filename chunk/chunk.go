// Package chunk splits an in-memory sequence into fixed-size groups, each
// tagged with its zero-based position among all groups of the split.
package chunk

import (
	"github.com/dropbox/gohexdump/errors"
)

// DefaultSize is the group size used when the caller does not pick one.
// One dump row covers this many source bytes.
const DefaultSize = 16

// A Chunk is an ordered group of elements together with the group's
// position within the original sequence. Indices start at 0 and increase
// by 1 per chunk in sequence order.
type Chunk[T any] struct {
	Index int
	Elems []T
}

// Split partitions elems into chunks of at most n elements each, in input
// order, covering the input exactly once with no gaps or overlaps. The
// final chunk may be shorter than n and is not padded. An empty input
// produces no chunks, not one empty chunk.
//
// Chunks share backing storage with elems.
func Split[T any](elems []T, n int) ([]Chunk[T], error) {
	if n < 1 {
		return nil, errors.Newf("chunk size must be at least 1, got %d", n)
	}
	if len(elems) == 0 {
		return nil, nil
	}

	chunks := make([]Chunk[T], 0, (len(elems)+n-1)/n)
	for start := 0; start < len(elems); start += n {
		end := start + n
		if end > len(elems) {
			end = len(elems)
		}
		chunks = append(chunks, Chunk[T]{
			Index: len(chunks),
			Elems: elems[start:end],
		})
	}
	return chunks, nil
}

// Join concatenates the chunks' elements back into a single sequence, in
// index order. Join(Split(elems, n)) reproduces elems for any valid n.
func Join[T any](chunks []Chunk[T]) []T {
	total := 0
	for _, c := range chunks {
		total += len(c.Elems)
	}

	joined := make([]T, 0, total)
	for _, c := range chunks {
		joined = append(joined, c.Elems...)
	}
	return joined
}
