package encoding2

import (
	"fmt"
)

var octetMap [256]string

// ToHex maps each byte to its two-character uppercase hex octet
// ("00" through "FF"). This is total over byte values and cannot fail.
func ToHex(data []byte) []string {
	octets := make([]string, len(data))
	for i, b := range data {
		octets[i] = octetMap[b]
	}
	return octets
}

// This hex encodes the binary data and writes the octets to the writer,
// without building an intermediate slice.
func HexEncodeToWriter(w OctetWriter, data []byte) {
	for _, b := range data {
		_, _ = w.WriteString(octetMap[b])
	}
}

func init() {
	for x := 0; x < 256; x++ {
		octetMap[x] = fmt.Sprintf("%02X", x)
	}
}
