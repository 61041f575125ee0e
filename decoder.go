package utf58

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	intr "github.com/dadrian/utf58/internal"
)

// Decode reconstructs the scalar value for t and its payload. The payload
// must be exactly t.PayloadLen() bytes long.
func Decode(t Tag, payload []byte) (rune, error) {
	if t.Kind() == KindReserved {
		return 0, errorf(ErrReservedTag, "tag %d", uint8(t))
	}
	if want := t.PayloadLen(); len(payload) != want {
		return 0, errorf(ErrPayloadLength, "%v wants %d bytes, got %d", t, want, len(payload))
	}

	var r rune
	switch t {
	case TagMarker:
		// The only path allowed to produce the marker glyph.
		return MarkerGlyph, nil
	case TagEscape1:
		b := payload[0]
		if b >= 'a' && b <= 'z' {
			return 0, errorf(ErrLowercase, "%q", rune(b))
		}
		r = rune(b)
	case TagEscape2, TagEscape3:
		v, _ := intr.LE(payload)
		if !utf8.ValidRune(rune(v)) {
			return 0, errorf(ErrWeird, "%v value %#x", t, v)
		}
		r = rune(v)
	default:
		l, _ := t.Letter()
		r = rune(l)
	}

	if r == MarkerGlyph {
		return 0, errorf(ErrGay, "%v % x", t, payload)
	}
	return r, nil
}

// Decoder reads UTF-58 characters from an io.Reader.
type Decoder struct {
	r      io.Reader
	offset int64
	buf    [1 + MaxPayload]byte
}

// NewDecoder creates a new streaming decoder.
func NewDecoder(r io.Reader) *Decoder { return &Decoder{r: r} }

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int64 { return d.offset }

// ReadRune reads one character and returns it with its encoded size. It
// returns io.EOF only when the input ends on a character boundary. Errors
// for malformed characters carry the offset of their tag byte.
func (d *Decoder) ReadRune() (rune, int, error) {
	start := d.offset
	n, err := intr.ReadFull(d.r, d.buf[:1])
	d.offset += int64(n)
	if err != nil {
		return 0, 0, err
	}
	tb := d.buf[0]
	if tb&^tagMask != 0 {
		return 0, 0, &Error{Kind: ErrInvalidTag, Offset: start, Detail: fmt.Sprintf("tag byte 0x%02x", tb)}
	}
	t := NewTag(tb)
	plen := t.PayloadLen()
	if plen < 0 {
		return 0, 0, &Error{Kind: ErrReservedTag, Offset: start, Detail: fmt.Sprintf("tag %d", tb)}
	}
	payload := d.buf[1 : 1+plen]
	n, err = intr.ReadFull(d.r, payload)
	d.offset += int64(n)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, 0, &Error{Kind: ErrUnexpectedEOF, Offset: start, Detail: "truncated " + t.String() + " payload"}
		}
		return 0, 0, err
	}
	r, err := Decode(t, payload)
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.Offset = start
		}
		return 0, 0, err
	}
	return r, 1 + plen, nil
}

// Decode reads characters until EOF and stores the text in s.
func (d *Decoder) Decode(s *string) error {
	var sb strings.Builder
	for {
		r, _, err := d.ReadRune()
		if err == io.EOF {
			*s = sb.String()
			return nil
		}
		if err != nil {
			return err
		}
		sb.WriteRune(r)
	}
}
