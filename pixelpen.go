/*
Package pixelpen converts Pixel Pen documents into the native binary
format consumed by the Vic-20: the video matrix, the color matrix and
the character bitmaps, laid out exactly as the hardware and downstream
build tooling expect.
*/
package pixelpen

import "log"

// PixelPen converts documents with a fixed set of options.
type PixelPen struct {
	opts   Options
	logger *log.Logger
}

// New returns a converter for the given options, or an error if the
// options name an unknown section or bitmap order.
func New(opts Options, logger *log.Logger) (*PixelPen, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &PixelPen{
		opts:   opts,
		logger: logger,
	}, nil
}
