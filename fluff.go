package pixelpen

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/bodgit/pixelpen/vic"
)

// Support for Turbo Rascal's FLUFF64 file format, reverse engineered
// from its example files and source code.

const fluffMagic = "FLUFF64"

type fluffHeader struct {
	// Version number, 2 on all files seen so far.
	Version uint32

	// Image type, 4 is CharMapMulticolor.
	ImageType uint8

	// Palette type, 6 is VIC20.
	PaletteType uint8

	Background uint8
	// A copy of Background.
	Background2 uint8
	Border      uint8
	Aux         uint8
	Pen3        uint8

	// Picture size in characters.
	WidthChars  uint8
	HeightChars uint8
}

type fluffChar struct {
	// Bitmap bits, in reverse pixel order compared to memory layout
	// and with the aux and color pixel codes swapped compared to the
	// hardware's.
	Bits [8]byte

	Background uint8
	Border     uint8
	Aux        uint8
	Color      uint8
}

// fixFluffBits reverses the four multicolor pixels in a bitmap byte and
// swaps the 0b10 and 0b11 pixel codes, yielding the hardware layout.
func fixFluffBits(b byte) byte {
	var fixed byte
	for bit := uint(0); bit < 8; bit += 2 {
		p := b >> (6 - bit) & 0b11
		switch p {
		case 0b10:
			p = 0b11
		case 0b11:
			p = 0b10
		}
		fixed |= p << bit
	}
	return fixed
}

// DecodeFluff reads a FLUFF64 image from r and returns it as a
// Document. FLUFF64 stores a bitmap per cell rather than a character
// table, so identical bitmaps are deduplicated into characters in
// first-seen order.
func DecodeFluff(r io.Reader) (*Document, error) {
	var magic [len(fluffMagic)]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errTruncated
		}
		return nil, err
	}
	if string(magic[:]) != fluffMagic {
		return nil, errWrongMagic
	}

	var header fluffHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errTruncated
		}
		return nil, err
	}

	width, height := int(header.WidthChars), int(header.HeightChars)
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("pixelpen: invalid image size: %d columns x %d rows", width, height)
	}

	image := &vic.Image{
		Columns:     width,
		Rows:        height,
		Colors:      vic.GlobalColors{header.Background, header.Border, header.Aux},
		VideoChars:  make([]int, 0, width*height),
		VideoColors: make([]uint8, 0, width*height),
	}

	numbers := make(map[[vic.CharHeight]byte]int)
	for i := 0; i < width*height; i++ {
		var c fluffChar
		if err := binary.Read(r, binary.LittleEndian, &c); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, errTruncated
			}
			return nil, err
		}

		var bits [vic.CharHeight]byte
		for j, b := range c.Bits {
			bits[j] = fixFluffBits(b)
		}

		num, ok := numbers[bits]
		if !ok {
			num = len(image.Characters)
			numbers[bits] = num
			image.Characters = append(image.Characters, hex.EncodeToString(bits[:]))
		}

		// Color can be 255 for characters with no color.
		color := c.Color
		if color > 7 {
			color = 1
		}
		// Turbo Rascal charmaps are multicolor.
		color |= 8

		image.VideoChars = append(image.VideoChars, num)
		image.VideoColors = append(image.VideoColors, color)
	}

	return &Document{Image: image}, nil
}
