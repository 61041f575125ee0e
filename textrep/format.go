package textrep

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dadrian/utf58"
)

// Format renders a UTF-58 stream as a listing, one character per line.
// Escaped characters are annotated with their code point. The output
// parses back to the same bytes with EncodeBytes.
func Format(data []byte) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write renders data to w as Format does.
func Write(w io.Writer, data []byte) error {
	dec := utf58.NewDecoder(bytes.NewReader(data))
	for {
		off := dec.Offset()
		r, size, err := dec.ReadRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, formatChar(data[off:off+int64(size)], r)+"\n"); err != nil {
			return err
		}
	}
}

func formatChar(enc []byte, r rune) string {
	t := utf58.NewTag(enc[0])
	if t.Kind() != utf58.KindEscape {
		return t.String()
	}
	var sb strings.Builder
	sb.WriteString(t.String())
	for _, b := range enc[1:] {
		fmt.Fprintf(&sb, " %02x", b)
	}
	fmt.Fprintf(&sb, "  # U+%04X", r)
	return sb.String()
}
