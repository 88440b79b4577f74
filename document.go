package pixelpen

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bodgit/pixelpen/vic"
)

var (
	errWrongMagic = errors.New("pixelpen: incorrect file identifier - wrong file type?")
	errTruncated  = errors.New("pixelpen: truncated data")
)

// Document is a Pixel Pen document: the image the user is working on.
type Document struct {
	Image *vic.Image
}

type imageFile struct {
	Columns int              `json:"columns"`
	Rows    int              `json:"rows"`
	Colors  vic.GlobalColors `json:"colors"`

	// One character number per cell, row-major.
	VideoChars []int `json:"video_chars"`

	// The color and multicolor bit at each cell.
	VideoColors []uint8 `json:"video_colors"`

	// Bitmap for each character as a hex string; characters that were
	// never defined are stored as null.
	Characters []*string `json:"characters"`
}

func (f *imageFile) verify() error {
	if f.Columns <= 0 || f.Rows <= 0 {
		return fmt.Errorf("pixelpen: invalid image size: %d columns x %d rows", f.Columns, f.Rows)
	}
	if len(f.Characters) == 0 {
		return errors.New("pixelpen: no characters")
	}
	if len(f.VideoChars) != f.Columns*f.Rows || len(f.VideoColors) != f.Columns*f.Rows {
		return fmt.Errorf("pixelpen: expected %d cells, got %d characters and %d colors",
			f.Columns*f.Rows, len(f.VideoChars), len(f.VideoColors))
	}
	return nil
}

func (f *imageFile) image() *vic.Image {
	characters := make([]string, len(f.Characters))
	for i, c := range f.Characters {
		if c != nil {
			characters[i] = *c
		}
	}
	return &vic.Image{
		Columns:     f.Columns,
		Rows:        f.Rows,
		Colors:      f.Colors,
		VideoChars:  f.VideoChars,
		VideoColors: f.VideoColors,
		Characters:  characters,
	}
}

// ReadDocument reads a document in the native JSON format from r.
func ReadDocument(r io.Reader) (*Document, error) {
	var file struct {
		Image imageFile `json:"image"`
	}
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, err
	}
	if err := file.Image.verify(); err != nil {
		return nil, err
	}
	return &Document{Image: file.Image.image()}, nil
}

// LoadDocument loads a document from a file in any supported format,
// identified by its contents: Turbo Rascal's FLUFF64, otherwise the
// native JSON format.
func LoadDocument(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	magic, err := r.Peek(len(fluffMagic))
	if err == nil && string(magic) == fluffMagic {
		return DecodeFluff(r)
	}
	return ReadDocument(r)
}
