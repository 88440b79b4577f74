package vic

import "io"

// Section is one of the independently orderable output blocks.
type Section byte

const (
	SectionVideo   Section = 'V'
	SectionColors  Section = 'C'
	SectionBitmaps Section = 'B'
)

// ParseSections maps a string of section letters to the sections to
// write, in the given order. Letters are case-insensitive and repeats
// collapse to their first occurrence.
func ParseSections(s string) ([]Section, error) {
	var sections []Section
	seen := make(map[Section]bool)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		switch sec := Section(c); sec {
		case SectionVideo, SectionColors, SectionBitmaps:
			if !seen[sec] {
				seen[sec] = true
				sections = append(sections, sec)
			}
		default:
			return nil, &InvalidSectionError{s[i]}
		}
	}
	return sections, nil
}

// Layout records the byte offset within the output stream at which each
// section started. An offset is nil if that section was not written.
type Layout struct {
	VideoOffset, ColorsOffset, BitmapsOffset *int
}

type encoder struct {
	w io.Writer
	n int
}

func (e *encoder) section(b []byte) (int, error) {
	offset := e.n
	n, err := e.w.Write(b)
	e.n += n
	return offset, err
}

// Encode writes the requested sections of img to w in the given order,
// visiting cells in the given cell order, and returns where each
// section started. The video and color matrices are permuted by the
// cell order; the bitmap section contents are chosen by bitmapOrder.
func Encode(w io.Writer, img *Converted, order []Cell, sections []Section, bitmapOrder BitmapOrder) (*Layout, error) {
	for _, sec := range sections {
		if sec == SectionVideo && img.NumChars > MaxChars {
			return nil, &TooManyCharactersError{img.NumChars}
		}
	}

	video := make([]byte, 0, len(order))
	colors := make([]byte, 0, len(order))
	for _, cell := range order {
		i := cell.Row*img.Width + cell.Column
		video = append(video, img.Video[i])
		colors = append(colors, img.VideoColors[i])
	}

	e := encoder{w: w}
	layout := new(Layout)

	for _, sec := range sections {
		var (
			b      []byte
			offset **int
		)
		switch sec {
		case SectionVideo:
			b, offset = video, &layout.VideoOffset
		case SectionColors:
			b, offset = colors, &layout.ColorsOffset
		case SectionBitmaps:
			b, offset = bitmapOrder.Bytes(img, video), &layout.BitmapsOffset
		}
		n, err := e.section(b)
		if err != nil {
			return nil, err
		}
		*offset = &n
	}

	return layout, nil
}
