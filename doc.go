// Package utf58 implements UTF-58, a variable-width character encoding
// that maps each Unicode scalar value to a 5-bit tag plus zero to three
// little-endian payload bytes.
//
// Lowercase ASCII letters and the marker glyph (U+1F308) are carried by the
// tag alone. Every other scalar uses one of three escape tags followed by
// its code point with the high zero bytes dropped. Each scalar has exactly
// one legal encoding; Decode rejects the others.
//
// Encode and Decode handle one character at a time. Marshal/Unmarshal and
// the streaming Encoder/Decoder frame whole texts as a tag byte followed by
// the payload bytes that tag calls for.
package utf58
