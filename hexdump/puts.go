package hexdump

import (
	"io"
	"os"
	"strings"
)

// Sdump returns the complete rendered dump of data as a single string.
func Sdump(data []byte) string {
	return strings.Join(Format(Dump(data)), "")
}

// Fputs renders data and writes the whole dump to w in one call. The
// writer is the injected output sink; pass a bytes.Buffer to capture the
// dump without touching global state.
func Fputs(w io.Writer, data []byte) error {
	_, err := io.WriteString(w, Sdump(data))
	return err
}

// Puts renders data to standard output.
func Puts(data []byte) error {
	return Fputs(os.Stdout, data)
}

// Bytes is a byte slice that renders as its hex dump.
//
// It can be used for easy lazy hex dumping:
//
//     log.Printf("payload:\n%s", hexdump.Bytes(payload))
//
type Bytes []byte

func (b Bytes) String() string {
	return Sdump([]byte(b))
}
