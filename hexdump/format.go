package hexdump

import (
	"fmt"
	"strings"

	"github.com/dropbox/gohexdump/chunk"
)

// Field widths of one rendered row. The octet field is sized for a full
// default-size chunk: three characters per byte (two hex digits plus a
// separator) and two extra spaces before the printable column. The width
// stays pinned to chunk.DefaultSize rather than the actual chunk length,
// so partial final rows leave the slack blank.
const (
	indexFieldWidth = 8
	octetFieldWidth = 2 + chunk.DefaultSize*3
)

// Format renders each fragment as one newline-terminated row: the
// fragment index left-justified to 8 characters, the space-joined octets
// left-justified to 50 characters, then the printable text verbatim. An
// empty dump formats to no rows.
func Format(fragments []Fragment) []string {
	lines := make([]string, len(fragments))
	for i, f := range fragments {
		lines[i] = fmt.Sprintf("%-*d%-*s%s\n",
			indexFieldWidth, f.Index(),
			octetFieldWidth, strings.Join(f.Hex.Elems, " "),
			f.Printable.Elems)
	}
	return lines
}
