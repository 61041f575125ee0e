package utf58

import (
	"io"
	"unicode/utf8"

	intr "github.com/dadrian/utf58/internal"
)

// Encode returns the tag and payload for r. r must be a valid Unicode
// scalar value; Encode panics with an *Error of kind ErrInvalidScalar
// otherwise.
func Encode(r rune) (Tag, []byte) {
	var buf [MaxPayload]byte
	t, n := encodeRune(&buf, r)
	if n == 0 {
		return t, nil
	}
	return t, append([]byte(nil), buf[:n]...)
}

// encodeRune writes the payload for r into buf and returns the tag and the
// payload length.
func encodeRune(buf *[MaxPayload]byte, r rune) (Tag, int) {
	if !utf8.ValidRune(r) {
		panic(errorf(ErrInvalidScalar, "U+%04X", uint32(r)))
	}
	if r == MarkerGlyph {
		return TagMarker, 0
	}
	if r >= 'a' && r <= 'z' {
		return NewTag(byte(r)), 0
	}
	v := uint32(r)
	n := intr.MinWidth(v)
	if n > MaxPayload {
		// unreachable for valid scalars
		panic(errorf(ErrInvalidScalar, "U+%04X does not fit in 24 bits", v))
	}
	intr.PutLE(buf[:], v, n)
	return escapeFor(n), n
}

// RuneLen returns the number of bytes AppendRune writes for r, or -1 if r
// is not a valid scalar value.
func RuneLen(r rune) int {
	switch {
	case !utf8.ValidRune(r):
		return -1
	case r == MarkerGlyph, r >= 'a' && r <= 'z':
		return 1
	default:
		return 1 + intr.MinWidth(uint32(r))
	}
}

// AppendRune appends the tag byte and payload for r to dst. It panics like
// Encode when r is not a valid scalar value.
func AppendRune(dst []byte, r rune) []byte {
	var buf [MaxPayload]byte
	t, n := encodeRune(&buf, r)
	dst = append(dst, byte(t))
	return append(dst, buf[:n]...)
}

// AppendString appends the encoding of every character in s to dst.
func AppendString(dst []byte, s string) ([]byte, error) {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return dst, &Error{Kind: ErrInvalidUTF8, Offset: int64(i), Detail: "invalid byte in input text"}
			}
		}
		dst = AppendRune(dst, r)
	}
	return dst, nil
}

// Encoder writes UTF-58 characters to an io.Writer.
type Encoder struct {
	w   io.Writer
	buf [1 + MaxPayload]byte
}

// NewEncoder creates a new streaming encoder.
func NewEncoder(w io.Writer) *Encoder { return &Encoder{w: w} }

// WriteRune writes a single character and returns the number of bytes
// written.
func (e *Encoder) WriteRune(r rune) (int, error) {
	if !utf8.ValidRune(r) {
		return 0, errorf(ErrInvalidScalar, "U+%04X", uint32(r))
	}
	b := AppendRune(e.buf[:0], r)
	return e.w.Write(b)
}

// WriteString writes every character of s. Nothing is written if s is not
// valid UTF-8.
func (e *Encoder) WriteString(s string) (int, error) {
	if !utf8.ValidString(s) {
		_, err := AppendString(nil, s)
		return 0, err
	}
	var total int
	for _, r := range s {
		n, err := e.WriteRune(r)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Encode writes the encoding of s.
func (e *Encoder) Encode(s string) error {
	_, err := e.WriteString(s)
	return err
}
