package utf58

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// assertRoundtrip marshals text, checks the bytes against want, then
// unmarshals them back.
func assertRoundtrip(t *testing.T, text string, want []byte) {
	t.Helper()

	enc, err := Marshal(text)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if !bytes.Equal(enc, want) {
		t.Fatalf("encoded bytes mismatch:\n got: %x\nwant: %x", enc, want)
	}

	got, err := Unmarshal(enc)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got != text {
		t.Fatalf("decoded text mismatch:\n got: %q\nwant: %q", got, text)
	}
}

func Test_Letters(t *testing.T) {
	assertRoundtrip(t, "hello", []byte{0x08, 0x05, 0x0C, 0x0C, 0x0F})
}

func Test_Mixed(t *testing.T) {
	assertRoundtrip(t, "Hi あ😭🌈", []byte{
		0x1D, 'H', 0x09, 0x1D, ' ', 0x1E, 0x42, 0x30, 0x1F, 0x2D, 0xF6, 0x01, 0x00,
	})
}

func Test_Empty(t *testing.T) {
	assertRoundtrip(t, "", []byte{})
}

func TestUnmarshal_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		kind   ErrorKind
		offset int64
	}{
		{"tag out of range", []byte{0x01, 0x20}, ErrInvalidTag, 1},
		{"reserved tag", []byte{0x1B}, ErrReservedTag, 0},
		{"truncated payload", []byte{0x01, 0x1F, 0x2D}, ErrUnexpectedEOF, 1},
		{"lowercase escape", []byte{0x01, 0x02, 0x1D, 'c'}, ErrLowercase, 2},
		{"surrogate", []byte{0x1E, 0x00, 0xD8}, ErrWeird, 0},
		{"marker via escape", []byte{0x1D, 'A', 0x1F, 0x08, 0xF3, 0x01}, ErrGay, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal(tt.data)
			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("err = %v, want *Error", err)
			}
			if e.Kind != tt.kind || e.Offset != tt.offset {
				t.Fatalf("got kind %v offset %d, want %v at %d", e.Kind, e.Offset, tt.kind, tt.offset)
			}
			if Valid(tt.data) {
				t.Fatalf("Valid reported true")
			}
		})
	}
}

func TestDecoder_ReadRune(t *testing.T) {
	data, err := Marshal("aA😭")
	if err != nil {
		t.Fatal(err)
	}
	dec := NewDecoder(bytes.NewReader(data))
	want := []struct {
		r    rune
		size int
	}{{'a', 1}, {'A', 2}, {'😭', 4}}
	for _, w := range want {
		r, size, err := dec.ReadRune()
		if err != nil || r != w.r || size != w.size {
			t.Fatalf("ReadRune = %q,%d,%v want %q,%d", r, size, err, w.r, w.size)
		}
	}
	if _, _, err := dec.ReadRune(); err != io.EOF {
		t.Fatalf("want io.EOF, got %v", err)
	}
	if dec.Offset() != int64(len(data)) {
		t.Fatalf("Offset = %d, want %d", dec.Offset(), len(data))
	}
}

func TestCount(t *testing.T) {
	data, err := Marshal("zebra 🦓")
	if err != nil {
		t.Fatal(err)
	}
	n, err := Count(data)
	if err != nil || n != 7 {
		t.Fatalf("Count = %d,%v", n, err)
	}
	if !Valid(data) {
		t.Fatalf("Valid reported false")
	}
}
