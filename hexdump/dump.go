// Package hexdump renders binary data as fixed-width rows pairing a row
// index, a hex octet listing, and a printable rendering of the same bytes.
//
// The pipeline is three pure steps: encode the input byte-by-byte into a
// hex view and a printable view, split both views into default-size
// chunks, then format each matched pair of chunks into one output row.
package hexdump

import (
	"github.com/dropbox/gohexdump/chunk"
	"github.com/dropbox/gohexdump/encoding2"
)

// A Fragment holds one output row's worth of source bytes: the hex octet
// chunk and the printable chunk produced from the same byte range. The
// two chunks share an index and their elements correspond one-to-one,
// each pair derived from the same input byte.
type Fragment struct {
	Hex       chunk.Chunk[string]
	Printable chunk.Chunk[byte]
}

// Index returns the fragment's position among all fragments of the dump.
func (f Fragment) Index() int {
	return f.Hex.Index
}

// Dump encodes data into per-row fragments using chunk.DefaultSize bytes
// per row. It is total: every byte value 0-255 has both a hex and a
// printable form, and empty input yields no fragments.
func Dump(data []byte) []Fragment {
	// DefaultSize is positive, so Split cannot reject it.
	hexChunks, _ := chunk.Split(encoding2.ToHex(data), chunk.DefaultSize)
	printableChunks, _ := chunk.Split(encoding2.ToPrintable(data), chunk.DefaultSize)

	fragments := make([]Fragment, len(hexChunks))
	for i := range hexChunks {
		fragments[i] = Fragment{
			Hex:       hexChunks[i],
			Printable: printableChunks[i],
		}
	}
	return fragments
}
