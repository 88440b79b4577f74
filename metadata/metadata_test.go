package metadata

import (
	"bytes"
	"testing"

	"github.com/bodgit/pixelpen/vic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(i int) *int { return &i }

func converted() *vic.Converted {
	return &vic.Converted{
		Colors:     vic.GlobalColors{0, 1, 2},
		Width:      4,
		Height:     3,
		CharHeight: vic.CharHeight,
		NumChars:   5,
	}
}

func TestFromConversionCharacters(t *testing.T) {
	layout := &vic.Layout{
		VideoOffset:   intp(0),
		ColorsOffset:  intp(12),
		BitmapsOffset: intp(24),
	}

	m := FromConversion(converted(), 1, 2, vic.OrderCharacters, layout)

	require.Len(t, m.Groups, 4)
	assert.Equal(t, Group{"image", []Pair{
		{"width", 4},
		{"height", 3},
		{"left", 1},
		{"top", 2},
		{"cells", 12},
	}}, m.Groups[0])
	assert.Equal(t, Group{"colors", []Pair{
		{"background", 0},
		{"border", 1},
		{"aux", 2},
	}}, m.Groups[1])
	assert.Equal(t, Group{"bitmaps", []Pair{
		{"num_chars", 5},
		{"bitmap_size", 40},
	}}, m.Groups[2])
	assert.Equal(t, Group{"offsets", []Pair{
		{"video", 0},
		{"colors", 12},
		{"bitmaps", 24},
	}}, m.Groups[3])
}

func TestFromConversionLinear(t *testing.T) {
	m := FromConversion(converted(), 0, 0, vic.OrderLinear, &vic.Layout{BitmapsOffset: intp(0)})

	assert.Equal(t, Group{"bitmaps", []Pair{
		{"bitmap_size", 4 * 3 * vic.CharHeight},
	}}, m.Groups[2])
	assert.Equal(t, Group{"offsets", []Pair{
		{"bitmaps", 0},
	}}, m.Groups[3])
}

func TestFromConversionNoOffsets(t *testing.T) {
	m := FromConversion(converted(), 0, 0, vic.OrderPixelRows, &vic.Layout{})
	require.Len(t, m.Groups, 3)
}

func TestWrite(t *testing.T) {
	layout := &vic.Layout{
		VideoOffset:  intp(0),
		ColorsOffset: intp(12),
	}
	m := FromConversion(converted(), 0, 0, vic.OrderCharacters, layout)

	b := new(bytes.Buffer)
	require.NoError(t, m.Write(b, "logo_"))

	assert.Equal(t, `; image
logo_width=4
logo_height=3
logo_left=0
logo_top=0
logo_cells=12
; colors
logo_background=0
logo_border=1
logo_aux=2
; bitmaps
logo_num_chars=5
logo_bitmap_size=40
; offsets
logo_video=0
logo_colors=12
`, b.String())
}
