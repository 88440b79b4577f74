package vic

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSections(t *testing.T) {
	sections, err := ParseSections("VCB")
	require.NoError(t, err)
	assert.Equal(t, []Section{SectionVideo, SectionColors, SectionBitmaps}, sections)

	// Case-insensitive, any order.
	sections, err = ParseSections("bv")
	require.NoError(t, err)
	assert.Equal(t, []Section{SectionBitmaps, SectionVideo}, sections)

	// Repeats collapse to the first occurrence.
	sections, err = ParseSections("VVCV")
	require.NoError(t, err)
	assert.Equal(t, []Section{SectionVideo, SectionColors}, sections)

	_, err = ParseSections("VXB")
	require.Error(t, err)
	e, ok := err.(*InvalidSectionError)
	require.True(t, ok, "expected InvalidSectionError, got %v", err)
	assert.Equal(t, byte('X'), e.Char)
}

func mustSections(t *testing.T, s string) []Section {
	sections, err := ParseSections(s)
	require.NoError(t, err)
	return sections
}

func TestEncodeOffsets(t *testing.T) {
	img, err := testImage().Convert(Crop{})
	require.NoError(t, err)

	order := CellOrder(img.Width, img.Height, Traversal{})

	b := new(bytes.Buffer)
	layout, err := Encode(b, img, order, mustSections(t, "VCB"), OrderCharacters)
	require.NoError(t, err)

	cells := img.Width * img.Height
	require.NotNil(t, layout.VideoOffset)
	require.NotNil(t, layout.ColorsOffset)
	require.NotNil(t, layout.BitmapsOffset)
	assert.Equal(t, 0, *layout.VideoOffset)
	assert.Equal(t, cells, *layout.ColorsOffset)
	assert.Equal(t, 2*cells, *layout.BitmapsOffset)

	expected := append(append(append([]byte(nil), img.Video...), img.VideoColors...), img.Bitmaps...)
	assert.Equal(t, expected, b.Bytes())
}

func TestEncodeSectionOrder(t *testing.T) {
	img, err := testImage().Convert(Crop{})
	require.NoError(t, err)

	order := CellOrder(img.Width, img.Height, Traversal{})

	b := new(bytes.Buffer)
	layout, err := Encode(b, img, order, mustSections(t, "BV"), OrderCharacters)
	require.NoError(t, err)

	require.NotNil(t, layout.BitmapsOffset)
	require.NotNil(t, layout.VideoOffset)
	assert.Nil(t, layout.ColorsOffset)
	assert.Equal(t, 0, *layout.BitmapsOffset)
	assert.Equal(t, len(img.Bitmaps), *layout.VideoOffset)
	assert.Equal(t, len(img.Bitmaps)+len(img.Video), b.Len())
}

func TestEncodePermutes(t *testing.T) {
	img, err := testImage().Convert(Crop{})
	require.NoError(t, err)

	order := CellOrder(img.Width, img.Height, Traversal{ReverseColumns: true, ReverseRows: true})

	b := new(bytes.Buffer)
	_, err = Encode(b, img, order, mustSections(t, "V"), OrderCharacters)
	require.NoError(t, err)

	expected := make([]byte, len(img.Video))
	for i, v := range img.Video {
		expected[len(expected)-1-i] = v
	}
	assert.Equal(t, expected, b.Bytes())
}

func tooManyChars() *Converted {
	n := MaxChars + 1
	return &Converted{
		Width:       1,
		Height:      1,
		CharHeight:  CharHeight,
		NumChars:    n,
		Video:       []byte{0},
		VideoColors: []byte{0},
		Bitmaps:     make([]byte, n*CharHeight),
	}
}

func TestEncodeTooManyCharacters(t *testing.T) {
	img := tooManyChars()
	order := CellOrder(img.Width, img.Height, Traversal{})

	b := new(bytes.Buffer)
	_, err := Encode(b, img, order, mustSections(t, "VCB"), OrderCharacters)
	require.Error(t, err)

	e, ok := err.(*TooManyCharactersError)
	require.True(t, ok, "expected TooManyCharactersError, got %v", err)
	assert.Equal(t, MaxChars+1, e.NumChars)

	// Nothing may have been written.
	assert.Zero(t, b.Len())

	// Without the video section the same image is fine.
	layout, err := Encode(b, img, order, mustSections(t, "CB"), OrderLinear)
	require.NoError(t, err)
	assert.Nil(t, layout.VideoOffset)
	require.NotNil(t, layout.BitmapsOffset)
	assert.Equal(t, 1, *layout.BitmapsOffset)
}
