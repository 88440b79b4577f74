package vic

import "encoding/hex"

// Image is a source character-cell image: a columns x rows grid where
// each cell references one entry in the character bitmap table and
// carries its own color nibble.
type Image struct {
	Columns, Rows int
	Colors        GlobalColors

	// VideoChars holds the character number at each cell, row-major,
	// length Columns*Rows.
	VideoChars []int

	// VideoColors holds the color at each cell, same layout.
	VideoColors []uint8

	// Characters holds the bitmap for each character as a hexadecimal
	// string of CharHeight bytes, indexed by character number. An empty
	// string is a character that was never defined and decodes to an
	// all-zero bitmap.
	Characters []string
}

// Crop selects a sub-rectangle of an Image in cells. A nil field takes
// its default: 0 for Left and Top, the remaining extent for Width and
// Height.
type Crop struct {
	Left, Top, Width, Height *int
}

// Converted is an Image materialized as Vic-20 memory contents.
type Converted struct {
	Colors GlobalColors

	// Width and Height are the cropped size in cells.
	Width, Height int

	// CharHeight is the number of bytes per character bitmap.
	CharHeight int

	// NumChars counts the characters defined by the source document,
	// not just those referenced inside the crop.
	NumChars int

	// Video holds one character number per cell, row-major within the
	// crop, truncated to 8 bits.
	Video []byte

	// VideoColors holds one color per cell, same layout, unmodified.
	VideoColors []byte

	// Bitmaps is the full character bitmap table, NumChars*CharHeight
	// bytes, in character number order.
	Bitmaps []byte
}

// Convert crops the image and materializes it as Vic-20 memory
// contents. The bitmap table always spans the whole character set, so
// video matrix entries remain valid indices into it no matter how the
// image is cropped.
func (m *Image) Convert(crop Crop) (*Converted, error) {
	left, top := 0, 0
	if crop.Left != nil {
		left = *crop.Left
	}
	if crop.Top != nil {
		top = *crop.Top
	}
	width, height := m.Columns-left, m.Rows-top
	if crop.Width != nil {
		width = *crop.Width
	}
	if crop.Height != nil {
		height = *crop.Height
	}

	if top < 0 || top > m.Rows {
		return nil, &OutOfRangeError{"top", top}
	}
	if height < 0 || top+height > m.Rows {
		return nil, &OutOfRangeError{"height", height}
	}
	if left < 0 || left > m.Columns {
		return nil, &OutOfRangeError{"left", left}
	}
	if width < 0 || left+width > m.Columns {
		return nil, &OutOfRangeError{"width", width}
	}

	bitmaps := make([]byte, 0, len(m.Characters)*CharHeight)
	for num, chars := range m.Characters {
		if chars == "" {
			bitmaps = append(bitmaps, make([]byte, CharHeight)...)
			continue
		}
		b, err := hex.DecodeString(chars)
		if err != nil {
			return nil, &DecodeError{num, err}
		}
		if len(b) != CharHeight {
			return nil, &DecodeError{num, errBitmapLength}
		}
		bitmaps = append(bitmaps, b...)
	}

	video := make([]byte, 0, width*height)
	colors := make([]byte, 0, width*height)
	for r := top; r < top+height; r++ {
		for _, c := range m.VideoChars[r*m.Columns+left : r*m.Columns+left+width] {
			video = append(video, byte(c))
		}
		colors = append(colors, m.VideoColors[r*m.Columns+left:r*m.Columns+left+width]...)
	}

	return &Converted{
		Colors:      m.Colors,
		Width:       width,
		Height:      height,
		CharHeight:  CharHeight,
		NumChars:    len(m.Characters),
		Video:       video,
		VideoColors: colors,
		Bitmaps:     bitmaps,
	}, nil
}

// Invert flips every pixel in the bitmap table. Applying it twice
// restores the original bitmaps.
func (c *Converted) Invert() {
	for i := range c.Bitmaps {
		c.Bitmaps[i] ^= 0xff
	}
}
