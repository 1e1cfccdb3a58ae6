package encoding2

import (
	"io"
)

// An interface for destinations of streamed octet output.
type OctetWriter interface {
	io.Writer
	io.StringWriter
}
