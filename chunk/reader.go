package chunk

import (
	"io"
)

// A Reader streams the bytes held by a sequence of byte chunks, in chunk
// order, without concatenating them up front.
type Reader struct {
	chunks   []Chunk[byte]
	chunkIdx int
	offset   int
}

func NewReader(chunks []Chunk[byte]) *Reader {
	return &Reader{
		chunks:   chunks,
		chunkIdx: 0,
		offset:   0,
	}
}

// Size returns the total number of bytes the reader will yield from a
// fresh state.
func (r *Reader) Size() int64 {
	total := 0
	for _, c := range r.chunks {
		total += len(c.Elems)
	}
	return int64(total)
}

func (r *Reader) Read(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}

	numRead := 0
	for len(buf) > 0 {
		if r.chunkIdx >= len(r.chunks) {
			if numRead == 0 {
				return 0, io.EOF
			}
			return numRead, nil
		}

		n := copy(buf, r.chunks[r.chunkIdx].Elems[r.offset:])

		buf = buf[n:]
		numRead += n
		r.offset += n

		if r.offset >= len(r.chunks[r.chunkIdx].Elems) {
			r.offset = 0
			r.chunkIdx += 1
		}
	}

	return numRead, nil
}
