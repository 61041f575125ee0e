package textrep

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"github.com/dadrian/utf58"
)

// Public API

// Encode reads a listing from r and writes the UTF-58 stream to w.
func Encode(r io.Reader, w io.Writer) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	out, err := EncodeBytes(src)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// EncodeBytes parses a listing and returns the UTF-58 stream it describes.
// Every entry must be a canonical UTF-58 character.
func EncodeBytes(src []byte) ([]byte, error) {
	p := &parser{lx: newLexer(src)}
	var out []byte
	p.lx.next()
	for p.lx.cur.kind != tokEOF {
		var err error
		out, err = p.parseEntry(out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

type parser struct {
	lx *lexer
}

func (p *parser) errorf(tok token, format string, args ...any) error {
	line, col := position(p.lx.src, tok.off)
	return fmt.Errorf("%d:%d: %s", line, col, fmt.Sprintf(format, args...))
}

// parseEntry appends the bytes for the entry at the current token.
func (p *parser) parseEntry(out []byte) ([]byte, error) {
	tok := p.lx.cur
	switch tok.kind {
	case tokMarker:
		p.lx.next()
		return append(out, byte(utf58.TagMarker)), nil
	case tokEsc1, tokEsc2, tokEsc3:
		return p.parseEscape(out)
	case tokWord:
		if len(tok.lit) != 1 || tok.lit[0] < 'a' || tok.lit[0] > 'z' {
			return nil, p.errorf(tok, "unexpected word %q", tok.lit)
		}
		p.lx.next()
		return append(out, byte(utf58.NewTag(tok.lit[0]))), nil
	case tokCodePoint:
		v, err := strconv.ParseUint(tok.lit, 16, 32)
		if err != nil || tok.lit == "" {
			return nil, p.errorf(tok, "bad code point U+%s", tok.lit)
		}
		if utf58.RuneLen(rune(v)) < 0 {
			return nil, p.errorf(tok, "U+%s is not a scalar value", tok.lit)
		}
		p.lx.next()
		return utf58.AppendRune(out, rune(v)), nil
	case tokString:
		p.lx.next()
		out, err := utf58.AppendString(out, tok.lit)
		if err != nil {
			return nil, p.errorf(tok, "%v", err)
		}
		return out, nil
	case tokError:
		return nil, p.errorf(tok, "%s", tok.lit)
	default:
		return nil, p.errorf(tok, "unexpected token %q", tok.lit)
	}
}

func (p *parser) parseEscape(out []byte) ([]byte, error) {
	tok := p.lx.cur
	var t utf58.Tag
	switch tok.kind {
	case tokEsc1:
		t = utf58.TagEscape1
	case tokEsc2:
		t = utf58.TagEscape2
	default:
		t = utf58.TagEscape3
	}
	payload := make([]byte, t.PayloadLen())
	for i := range payload {
		p.lx.next()
		b, ok := parseHexByte(p.lx.cur)
		if !ok {
			return nil, p.errorf(p.lx.cur, "%s wants %d payload bytes, got %q", tok.lit, len(payload), p.lx.cur.lit)
		}
		payload[i] = b
	}
	if _, err := utf58.Decode(t, payload); err != nil {
		return nil, p.errorf(tok, "%v", err)
	}
	p.lx.next()
	out = append(out, byte(t))
	return append(out, payload...), nil
}

func parseHexByte(tok token) (byte, bool) {
	if tok.kind != tokWord || len(tok.lit) != 2 {
		return 0, false
	}
	var b [1]byte
	if _, err := hex.Decode(b[:], []byte(tok.lit)); err != nil {
		return 0, false
	}
	return b[0], true
}

// position converts a byte offset into a 1-based line and column.
func position(src []byte, off int) (int, int) {
	if off > len(src) {
		off = len(src)
	}
	line := 1 + bytes.Count(src[:off], []byte{'\n'})
	col := off - bytes.LastIndexByte(src[:off], '\n')
	return line, col
}
