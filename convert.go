package pixelpen

import (
	"io"
	"os"

	"github.com/bodgit/pixelpen/metadata"
	"github.com/bodgit/pixelpen/vic"
)

// Options configures a conversion run.
type Options struct {
	// Crop bounds in cells. A nil field takes its default: 0 for Left
	// and Top, the remaining extent for Width and Height.
	Left, Top, Width, Height *int

	// Cell traversal order.
	Traversal vic.Traversal

	// Sections selects which sections are written and in which order,
	// as a string over {V, C, B}.
	Sections string

	// BitmapOrder names the bitmap emission order: "characters",
	// "linear" or "pixel-rows".
	BitmapOrder string

	// Invert flips every bitmap pixel before emission.
	Invert bool

	// Prefix is prepended to every metadata key.
	Prefix string
}

func (o Options) validate() error {
	if _, err := vic.ParseSections(o.Sections); err != nil {
		return err
	}
	if _, err := vic.ParseBitmapOrder(o.BitmapOrder); err != nil {
		return err
	}
	return nil
}

func (o Options) crop() vic.Crop {
	return vic.Crop{Left: o.Left, Top: o.Top, Width: o.Width, Height: o.Height}
}

// Convert converts doc and writes the binary output to w, returning the
// metadata describing the result. Nothing written to w is valid if an
// error is returned.
func (p *PixelPen) Convert(doc *Document, w io.Writer) (*metadata.Meta, error) {
	// Already validated by New.
	sections, _ := vic.ParseSections(p.opts.Sections)
	bitmapOrder, _ := vic.ParseBitmapOrder(p.opts.BitmapOrder)

	img, err := doc.Image.Convert(p.opts.crop())
	if err != nil {
		return nil, err
	}
	if p.opts.Invert {
		img.Invert()
	}

	order := vic.CellOrder(img.Width, img.Height, p.opts.Traversal)

	layout, err := vic.Encode(w, img, order, sections, bitmapOrder)
	if err != nil {
		return nil, err
	}

	left, top := 0, 0
	if p.opts.Left != nil {
		left = *p.opts.Left
	}
	if p.opts.Top != nil {
		top = *p.opts.Top
	}

	return metadata.FromConversion(img, left, top, bitmapOrder, layout), nil
}

// ConvertFile loads the document in input and writes the binary output
// to the output file, plus the metadata to the meta file unless meta is
// empty.
func (p *PixelPen) ConvertFile(input, output, meta string) error {
	doc, err := LoadDocument(input)
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := p.Convert(doc, f)
	if err != nil {
		return err
	}

	p.logger.Printf("Converted \"%s\" to \"%s\"\n", input, output)

	if meta == "" {
		return nil
	}

	mf, err := os.Create(meta)
	if err != nil {
		return err
	}
	defer mf.Close()

	return m.Write(mf, p.opts.Prefix)
}
