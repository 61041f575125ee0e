package utf58

import "fmt"

// ErrorKind classifies decoding/encoding errors. Every kind is also usable
// as an errors.Is target.
type ErrorKind int

const (
	// ErrLowercase: an escape-1 payload holds a letter that has its own tag.
	ErrLowercase ErrorKind = iota + 1
	// ErrWeird: the reconstructed value is not a Unicode scalar value.
	ErrWeird
	// ErrGay: a path other than the marker tag produced the marker glyph.
	ErrGay
	ErrReservedTag
	ErrPayloadLength
	ErrInvalidTag
	ErrInvalidScalar
	ErrInvalidUTF8
	ErrUnexpectedEOF
)

var kindMessages = map[ErrorKind]string{
	ErrLowercase:     "lowercase letter in escape-1 payload",
	ErrWeird:         "payload is not a unicode scalar value",
	ErrGay:           "marker glyph reached through a non-marker tag",
	ErrReservedTag:   "reserved tag",
	ErrPayloadLength: "payload length does not match tag",
	ErrInvalidTag:    "tag byte out of range",
	ErrInvalidScalar: "not a unicode scalar value",
	ErrInvalidUTF8:   "invalid utf-8",
	ErrUnexpectedEOF: "unexpected end of input",
}

func (k ErrorKind) String() string {
	if m, ok := kindMessages[k]; ok {
		return m
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) Error() string { return "utf58: " + k.String() }

// Error carries offset and classification for better diagnostics.
type Error struct {
	Offset int64
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := "utf58: " + e.Kind.String()
	if e.Offset > 0 {
		msg += fmt.Sprintf(" at %d", e.Offset)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is reports whether target is e's kind, or an *Error of the same kind.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case ErrorKind:
		return e.Kind == t
	case *Error:
		return t != nil && e.Kind == t.Kind
	}
	return false
}

func errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
