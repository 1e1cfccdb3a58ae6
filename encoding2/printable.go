package encoding2

// Bytes outside [printableMin, printableMax] render as replacementByte in
// the printable view.
const (
	printableMin    = 0x20 // space
	printableMax    = 0x7E // tilde
	replacementByte = '.'
)

// ToPrintable maps each byte to itself when it falls in the printable
// ASCII range and to '.' otherwise. The result has the same length as
// data. This is total over byte values and cannot fail.
func ToPrintable(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		if b >= printableMin && b <= printableMax {
			out[i] = b
		} else {
			out[i] = replacementByte
		}
	}
	return out
}
