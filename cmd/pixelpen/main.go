package main

import (
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/pixelpen"
	"github.com/bodgit/pixelpen/vic"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func convertFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "left",
			Usage: "include source image starting at this character column",
		},
		&cli.IntFlag{
			Name:  "top",
			Usage: "include source image starting at this character row",
		},
		&cli.IntFlag{
			Name:  "width",
			Usage: "number of character columns to include",
		},
		&cli.IntFlag{
			Name:  "height",
			Usage: "number of character rows to include",
		},
		&cli.BoolFlag{
			Name:  "column-major",
			Usage: "write cells column by column instead of row by row",
		},
		&cli.BoolFlag{
			Name:  "reverse-columns",
			Usage: "write columns right to left",
		},
		&cli.BoolFlag{
			Name:  "reverse-rows",
			Usage: "write rows bottom to top",
		},
		&cli.StringFlag{
			Name:  "sections",
			Value: "VCB",
			Usage: "sections to write, in order: V (video), C (colors), B (bitmaps)",
		},
		&cli.StringFlag{
			Name:  "bitmap-order",
			Value: "characters",
			Usage: "bitmap order: characters, linear or pixel-rows",
		},
		&cli.BoolFlag{
			Name:  "invert",
			Usage: "invert the bitmap pixels",
		},
		&cli.StringFlag{
			Name:  "prefix",
			Usage: "prefix for metadata keys",
		},
	}
}

func intFlag(c *cli.Context, name string) *int {
	if !c.IsSet(name) {
		return nil
	}
	v := c.Int(name)
	return &v
}

func options(c *cli.Context) pixelpen.Options {
	return pixelpen.Options{
		Left:   intFlag(c, "left"),
		Top:    intFlag(c, "top"),
		Width:  intFlag(c, "width"),
		Height: intFlag(c, "height"),
		Traversal: vic.Traversal{
			ColumnMajor:    c.Bool("column-major"),
			ReverseColumns: c.Bool("reverse-columns"),
			ReverseRows:    c.Bool("reverse-rows"),
		},
		Sections:    c.String("sections"),
		BitmapOrder: c.String("bitmap-order"),
		Invert:      c.Bool("invert"),
		Prefix:      c.String("prefix"),
	}
}

func logger(c *cli.Context) *log.Logger {
	l := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		l.SetOutput(os.Stderr)
	}
	return l
}

func main() {
	app := cli.NewApp()

	app.Name = "pixelpen"
	app.Usage = "Pixel Pen image conversion utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert a Pixel Pen file to Vic-20 format",
			Description: "",
			ArgsUsage:   "INPUT OUTPUT",
			Flags: append(convertFlags(),
				&cli.StringFlag{
					Name:  "meta",
					Usage: "write metadata to this file",
				}),
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				p, err := pixelpen.New(options(c), logger(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := p.ConvertFile(c.Args().Get(0), c.Args().Get(1), c.String("meta")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "batch",
			Usage:       "Convert every Pixel Pen file under a directory",
			Description: "",
			ArgsUsage:   "DIRECTORY OUTPUT",
			Flags:       convertFlags(),
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				p, err := pixelpen.New(options(c), logger(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := p.Batch(c.Args().Get(0), c.Args().Get(1)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
