package textrep

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

type tokKind int

const (
	tokEOF tokKind = iota
	tokWord
	tokString
	tokCodePoint // U+XXXX
	tokMarker
	tokEsc1
	tokEsc2
	tokEsc3
	tokError
)

type token struct {
	kind tokKind
	lit  string
	off  int
}

type lexer struct {
	src []byte
	off int
	cur token
}

func newLexer(src []byte) *lexer { return &lexer{src: src} }

func (lx *lexer) next() {
	lx.skipSpaceAndComments()
	if lx.off >= len(lx.src) {
		lx.cur = token{kind: tokEOF, off: lx.off}
		return
	}
	start := lx.off
	b := lx.src[lx.off]
	// code points: U+1F308
	if b == 'U' && lx.off+1 < len(lx.src) && lx.src[lx.off+1] == '+' {
		lx.off += 2
		for lx.off < len(lx.src) && isHexDigit(lx.src[lx.off]) {
			lx.off++
		}
		lx.cur = token{kind: tokCodePoint, lit: string(lx.src[start+2 : lx.off]), off: start}
		return
	}
	// keywords, letters and hex bytes
	if isWordPart(b) {
		lx.off++
		for lx.off < len(lx.src) && isWordPart(lx.src[lx.off]) {
			lx.off++
		}
		s := string(lx.src[start:lx.off])
		switch s {
		case "marker":
			lx.cur = token{kind: tokMarker, lit: s, off: start}
		case "esc1":
			lx.cur = token{kind: tokEsc1, lit: s, off: start}
		case "esc2":
			lx.cur = token{kind: tokEsc2, lit: s, off: start}
		case "esc3":
			lx.cur = token{kind: tokEsc3, lit: s, off: start}
		default:
			lx.cur = token{kind: tokWord, lit: s, off: start}
		}
		return
	}
	// strings
	if b == '"' {
		s, n, err := scanString(lx.src[lx.off:])
		if err != nil {
			lx.cur = token{kind: tokError, lit: fmt.Sprintf("string error: %v", err), off: start}
			lx.off = len(lx.src)
			return
		}
		lx.cur = token{kind: tokString, lit: s, off: start}
		lx.off += n
		return
	}
	lx.off++
	lx.cur = token{kind: tokError, lit: fmt.Sprintf("unexpected char %q", b), off: start}
}

func (lx *lexer) skipSpaceAndComments() {
	for lx.off < len(lx.src) {
		b := lx.src[lx.off]
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == ';' {
			lx.off++
			continue
		}
		// line comments: # or //
		if b == '#' || (b == '/' && lx.off+1 < len(lx.src) && lx.src[lx.off+1] == '/') {
			for lx.off < len(lx.src) && lx.src[lx.off] != '\n' {
				lx.off++
			}
			continue
		}
		break
	}
}

func isWordPart(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}
func isHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

func scanString(src []byte) (string, int, error) {
	// src begins with '"'
	i := 1
	for i < len(src) {
		c := src[i]
		if c == '"' {
			i++
			unq, err := strconv.Unquote(string(src[:i]))
			return unq, i, err
		}
		if c == '\\' {
			i += 2
			continue
		}
		if c < utf8.RuneSelf {
			i++
			continue
		}
		_, size := utf8.DecodeRune(src[i:])
		if size <= 1 {
			return "", 0, fmt.Errorf("invalid utf-8")
		}
		i += size
	}
	return "", 0, fmt.Errorf("unterminated string")
}
