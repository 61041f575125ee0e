package internal

import "io"

// ReadFull fills buf from r. It returns the number of bytes read; a short
// read reports io.ErrUnexpectedEOF, or io.EOF when nothing was read.
func ReadFull(r io.Reader, buf []byte) (int, error) {
	var off int
	for off < len(buf) {
		n, err := r.Read(buf[off:])
		if n > 0 {
			off += n
		}
		if err != nil {
			if off == len(buf) {
				return off, nil
			}
			if err == io.EOF && off > 0 {
				return off, io.ErrUnexpectedEOF
			}
			return off, err
		}
		if n == 0 {
			// io.Reader made no progress; avoid infinite loop
			return off, io.ErrUnexpectedEOF
		}
	}
	return off, nil
}
