package utf58

import (
	"bytes"
	"io"
)

// Marshal encodes the UTF-8 text s into a UTF-58 byte slice.
func Marshal(s string) ([]byte, error) {
	return AppendString(make([]byte, 0, len(s)), s)
}

// Unmarshal decodes a UTF-58 byte slice into UTF-8 text.
func Unmarshal(data []byte) (string, error) {
	var s string
	if err := NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return "", err
	}
	return s, nil
}

// Count returns the number of characters in data, or the first decoding
// error.
func Count(data []byte) (int, error) {
	dec := NewDecoder(bytes.NewReader(data))
	var n int
	for {
		_, _, err := dec.ReadRune()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
	}
}

// Valid reports whether data decodes without error.
func Valid(data []byte) bool {
	_, err := Count(data)
	return err == nil
}
