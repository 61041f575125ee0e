package textrep

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dadrian/utf58"
)

func TestEncode_Listing(t *testing.T) {
	src := []byte(`
        # greeting
        h i
        esc1 20
        esc2 42 30   # U+3042
        esc3 2d f6 01
        marker
    `)
	out, err := EncodeBytes(src)
	if err != nil {
		t.Fatalf("EncodeBytes error: %v", err)
	}
	want := []byte{0x08, 0x09, 0x1D, 0x20, 0x1E, 0x42, 0x30, 0x1F, 0x2D, 0xF6, 0x01, 0x00}
	if !bytes.Equal(out, want) {
		t.Fatalf("got %x, want %x", out, want)
	}
	s, err := utf58.Unmarshal(out)
	if err != nil || s != "hi あ😭🌈" {
		t.Fatalf("Unmarshal = %q,%v", s, err)
	}
}

func TestEncode_StringsAndCodePoints(t *testing.T) {
	out, err := EncodeBytes([]byte(`"Ab"; U+1F308 U+41`))
	if err != nil {
		t.Fatalf("EncodeBytes error: %v", err)
	}
	want := []byte{0x1D, 'A', 0x02, 0x00, 0x1D, 0x41}
	if !bytes.Equal(out, want) {
		t.Fatalf("got %x, want %x", out, want)
	}
}

func TestEncode_Rejects(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"esc1 61", "lowercase"},
		{"esc2 00 d8", "unicode scalar"},
		{"esc3 08 f3 01", "marker glyph"},
		{"esc2 42", "payload bytes"},
		{"ab", "unexpected word"},
		{"a\n  U+D800", "2:3"},
		{"?", "unexpected char"},
		{`"open`, "unterminated"},
	}
	for _, tt := range tests {
		_, err := EncodeBytes([]byte(tt.src))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Fatalf("EncodeBytes(%q) err = %v, want containing %q", tt.src, err, tt.want)
		}
	}
}

func TestFormat_Roundtrip(t *testing.T) {
	data, err := utf58.Marshal("zA é😭🌈")
	if err != nil {
		t.Fatal(err)
	}
	listing, err := Format(data)
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	wantListing := strings.Join([]string{
		"z",
		"esc1 41  # U+0041",
		"esc1 20  # U+0020",
		"esc1 e9  # U+00E9",
		"esc3 2d f6 01  # U+1F62D",
		"marker",
		"",
	}, "\n")
	if listing != wantListing {
		t.Fatalf("listing mismatch:\n got: %q\nwant: %q", listing, wantListing)
	}
	back, err := EncodeBytes([]byte(listing))
	if err != nil {
		t.Fatalf("EncodeBytes error: %v", err)
	}
	if !bytes.Equal(back, data) {
		t.Fatalf("roundtrip mismatch: %x vs %x", back, data)
	}
}

func TestFormat_Invalid(t *testing.T) {
	if _, err := Format([]byte{0x1D, 'q'}); err == nil {
		t.Fatalf("expected error")
	}
}
