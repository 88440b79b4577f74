/*
Package vic converts a character-cell image into the binary layout the
Vic-20 consumes directly: a video matrix of character numbers, a color
matrix, and a table of 8-byte character bitmaps.

The output is written as up to three sections (video, colors, bitmaps)
concatenated in any caller-specified order with no headers or padding.
The byte offset of each section within the stream is reported separately
so build tooling can locate them.
*/
package vic

const (
	// CharHeight is the number of bytes (pixel rows) in one character
	// bitmap.
	CharHeight = 8

	// MaxChars is the largest character set addressable by a one-byte
	// video matrix entry.
	MaxChars = 256
)

// Indices into GlobalColors.
const (
	Background = iota
	Border
	Aux
)

// GlobalColors holds the shared color registers: background, border and
// auxiliary.
type GlobalColors [3]uint8
