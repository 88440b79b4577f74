package vic

// BitmapOrder selects the order in which character bitmap bytes are
// written to the bitmap section.
type BitmapOrder int

const (
	// OrderCharacters writes the bitmap of every defined character
	// once, in character number order. This is the order the hardware
	// expects when the video matrix indexes the character table
	// directly.
	OrderCharacters BitmapOrder = iota

	// OrderLinear writes the whole bitmap of each visited cell's
	// character, one cell at a time, repeating bitmaps as characters
	// repeat.
	OrderLinear

	// OrderPixelRows writes one pixel row at a time across a whole row
	// of visited cells before moving down to the next pixel row.
	OrderPixelRows
)

var bitmapOrderNames = map[string]BitmapOrder{
	"characters": OrderCharacters,
	"linear":     OrderLinear,
	"pixel-rows": OrderPixelRows,
}

// ParseBitmapOrder maps a bitmap order name to its BitmapOrder. The
// recognized names are "characters", "linear" and "pixel-rows".
func ParseBitmapOrder(name string) (BitmapOrder, error) {
	o, ok := bitmapOrderNames[name]
	if !ok {
		return 0, &UnknownStrategyError{name}
	}
	return o, nil
}

func (o BitmapOrder) String() string {
	for name, order := range bitmapOrderNames {
		if order == o {
			return name
		}
	}
	return "unknown"
}

// Bytes returns the bitmap section contents for img. visited is the
// character number of each cell in visitation order; OrderCharacters
// ignores it.
func (o BitmapOrder) Bytes(img *Converted, visited []byte) []byte {
	switch o {
	case OrderLinear:
		b := make([]byte, 0, len(visited)*img.CharHeight)
		for _, num := range visited {
			offset := int(num) * img.CharHeight
			b = append(b, img.Bitmaps[offset:offset+img.CharHeight]...)
		}
		return b
	case OrderPixelRows:
		b := make([]byte, 0, len(visited)*img.CharHeight)
		for y := 0; y < img.CharHeight*img.Height; y++ {
			cellRow, pixelRow := y/img.CharHeight, y%img.CharHeight
			for col := 0; col < img.Width; col++ {
				num := visited[cellRow*img.Width+col]
				b = append(b, img.Bitmaps[int(num)*img.CharHeight+pixelRow])
			}
		}
		return b
	default:
		return img.Bitmaps
	}
}
