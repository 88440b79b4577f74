/*
Package metadata implements the key/value description of a converted
image that is written next to the binary output for consumption by
build tooling.

The values are grouped and ordered; downstream tooling matches on both
the keys and their order, so neither may change.
*/
package metadata

import (
	"fmt"
	"io"

	"github.com/bodgit/pixelpen/vic"
)

// Pair is a single named value.
type Pair struct {
	Key   string
	Value int
}

// Group is a commented run of pairs.
type Group struct {
	Comment string
	Pairs   []Pair
}

// Meta is the ordered metadata describing one conversion.
type Meta struct {
	Groups []Group
}

// FromConversion derives the metadata for a converted image: its size
// and crop origin, the global colors, the size of the bitmap section
// under the chosen bitmap order, and the offset of every section that
// was written.
func FromConversion(img *vic.Converted, left, top int, order vic.BitmapOrder, layout *vic.Layout) *Meta {
	m := &Meta{
		Groups: []Group{
			{"image", []Pair{
				{"width", img.Width},
				{"height", img.Height},
				{"left", left},
				{"top", top},
				{"cells", img.Width * img.Height},
			}},
			{"colors", []Pair{
				{"background", int(img.Colors[vic.Background])},
				{"border", int(img.Colors[vic.Border])},
				{"aux", int(img.Colors[vic.Aux])},
			}},
		},
	}

	bitmaps := Group{Comment: "bitmaps"}
	if order == vic.OrderCharacters {
		bitmaps.Pairs = []Pair{
			{"num_chars", img.NumChars},
			{"bitmap_size", img.NumChars * img.CharHeight},
		}
	} else {
		bitmaps.Pairs = []Pair{
			{"bitmap_size", img.Width * img.Height * img.CharHeight},
		}
	}
	m.Groups = append(m.Groups, bitmaps)

	offsets := Group{Comment: "offsets"}
	for _, o := range []struct {
		key    string
		offset *int
	}{
		{"video", layout.VideoOffset},
		{"colors", layout.ColorsOffset},
		{"bitmaps", layout.BitmapsOffset},
	} {
		if o.offset != nil {
			offsets.Pairs = append(offsets.Pairs, Pair{o.key, *o.offset})
		}
	}
	if len(offsets.Pairs) > 0 {
		m.Groups = append(m.Groups, offsets)
	}

	return m
}

// Write writes the metadata to w as key=value lines with decimal
// values, prepending prefix to every key. Each group is preceded by a
// comment line.
func (m *Meta) Write(w io.Writer, prefix string) error {
	for _, g := range m.Groups {
		if _, err := fmt.Fprintf(w, "; %s\n", g.Comment); err != nil {
			return err
		}
		for _, p := range g.Pairs {
			if _, err := fmt.Fprintf(w, "%s%s=%d\n", prefix, p.Key, p.Value); err != nil {
				return err
			}
		}
	}
	return nil
}
