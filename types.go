package utf58

import "fmt"

// Tag is the 5-bit prefix of a UTF-58 character. It selects either a
// literal lowercase letter, the marker glyph, or one of the escape tiers
// that say how many payload bytes follow.
type Tag uint8

const (
	TagMarker  Tag = 0b00000
	TagEscape1 Tag = 0b11101
	TagEscape2 Tag = 0b11110
	TagEscape3 Tag = 0b11111

	tagMask = 0b11111
)

// MarkerGlyph is the only non-letter scalar with a payload-free encoding.
const MarkerGlyph rune = '🌈'

// MaxPayload is the largest number of payload bytes following a tag.
const MaxPayload = 3

// NewTag keeps the low 5 bits of b.
func NewTag(b byte) Tag { return Tag(b & tagMask) }

// TagKind classifies a tag value.
type TagKind int

const (
	KindMarker TagKind = iota
	KindLetter
	KindEscape
	KindReserved
)

func (k TagKind) String() string {
	switch k {
	case KindMarker:
		return "marker"
	case KindLetter:
		return "letter"
	case KindEscape:
		return "escape"
	case KindReserved:
		return "reserved"
	default:
		return fmt.Sprintf("TagKind(%d)", int(k))
	}
}

// Kind reports which variant t encodes. Values above 31 are never produced
// by NewTag and are reported as reserved.
func (t Tag) Kind() TagKind {
	switch {
	case t == TagMarker:
		return KindMarker
	case t >= 1 && t <= 26:
		return KindLetter
	case t >= TagEscape1 && t <= TagEscape3:
		return KindEscape
	default:
		return KindReserved
	}
}

// PayloadLen returns the number of payload bytes that follow t, or -1 for a
// reserved tag.
func (t Tag) PayloadLen() int {
	switch t {
	case TagEscape1:
		return 1
	case TagEscape2:
		return 2
	case TagEscape3:
		return 3
	}
	if t.Kind() == KindReserved {
		return -1
	}
	return 0
}

// Letter returns the lowercase ASCII letter for a letter tag.
func (t Tag) Letter() (byte, bool) {
	if t.Kind() != KindLetter {
		return 0, false
	}
	return byte(t) | 0b0110_0000, true
}

// escapeFor maps a payload width to its escape tag.
func escapeFor(n int) Tag {
	switch n {
	case 1:
		return TagEscape1
	case 2:
		return TagEscape2
	default:
		return TagEscape3
	}
}

func (t Tag) String() string {
	switch t {
	case TagMarker:
		return "marker"
	case TagEscape1:
		return "esc1"
	case TagEscape2:
		return "esc2"
	case TagEscape3:
		return "esc3"
	}
	if l, ok := t.Letter(); ok {
		return string(rune(l))
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}
