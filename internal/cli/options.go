package cli

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/darrynten/imagick-scripts/internal/label"
	"github.com/darrynten/imagick-scripts/internal/render"
)

// Sentinel errors for configuration validation.
var (
	// ErrMissingPaths indicates the input or output path was not given.
	ErrMissingPaths = errors.New("cli: input and output paths are required")
	// ErrBackground indicates an unrecognized background value.
	ErrBackground = errors.New(`cli: background must be "black", "transparent", or a #RRGGBB color`)
)

// Options is the raw command-line configuration before resolution.
type Options struct {
	// Mode selects the output mode, 1..6. Default 3 (color-coded map).
	Mode int

	// Grid selects grid-assisted labeling when nonzero: sample spacing as a
	// percent of width/height, 1..99. Zero (default) selects exhaustive
	// search.
	Grid int

	// Trim crops each per-label artifact to its bounding box plus margin.
	// Applies to modes 4-6 only.
	Trim bool

	// KeepCanvas retains original-frame offsets on trimmed artifacts.
	KeepCanvas bool

	// ListCanvas prints each artifact's geometry when trimming with
	// virtual-canvas retention.
	ListCanvas bool

	// Background is "black", "transparent", or a #RRGGBB hex color.
	Background string

	// Exponent is the color-ramp spread parameter, a positive integer.
	Exponent int

	// Input and Output are the image paths. Multi-artifact modes suffix the
	// output stem with -<label> per artifact.
	Input  string
	Output string
}

// Parse reads options from command-line arguments.
//
// The two positional arguments are the input and output paths. Flag errors
// and usage output go to the given writer.
func Parse(args []string, errOut io.Writer) (*Options, error) {
	opts := &Options{}

	fs := flag.NewFlagSet("isolate", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintf(errOut, "Usage: isolate [options] infile outfile\n\n")
		fmt.Fprintf(errOut, "Isolates each disconnected white shape in a binary image.\n\n")
		fmt.Fprintf(errOut, "Options:\n")
		fs.PrintDefaults()
	}

	fs.IntVar(&opts.Mode, "mode", 3, "output mode 1-6: 1=index map, 2=graylevel map, 3=color map,\n4=one graylevel image per shape, 5=one binary image per shape,\n6=one color image per shape")
	fs.IntVar(&opts.Grid, "grid", 0, "grid spacing as percent of width/height (1-99); probes only grid\npoints instead of every pixel, faster but may miss small shapes.\n0 means exhaustive search")
	fs.BoolVar(&opts.Trim, "trim", false, "crop each per-shape image to its bounding box plus a small margin\n(modes 4-6)")
	fs.BoolVar(&opts.KeepCanvas, "keep-canvas", false, "keep the original-frame offset on trimmed images")
	fs.BoolVar(&opts.ListCanvas, "list-canvas", false, "print WIDTHxHEIGHT+XOFF+YOFF per trimmed image (requires -trim and\n-keep-canvas)")
	fs.StringVar(&opts.Background, "background", "black", `background for per-shape images: "black", "transparent", or "#RRGGBB"`)
	fs.IntVar(&opts.Exponent, "exponent", 1, "color ramp spread exponent (positive integer; ~6 suits ~26 shapes)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() >= 1 {
		opts.Input = fs.Arg(0)
	}
	if fs.NArg() >= 2 {
		opts.Output = fs.Arg(1)
	}
	return opts, nil
}

// Validate checks every option range before any image work.
func (o *Options) Validate() error {
	if o.Input == "" || o.Output == "" {
		return ErrMissingPaths
	}
	if o.Mode < 1 || o.Mode > 6 {
		return fmt.Errorf("%w: got %d", render.ErrMode, o.Mode)
	}
	if o.Grid != 0 && (o.Grid < 1 || o.Grid > 99) {
		return fmt.Errorf("%w: got %d", label.ErrGridSpacing, o.Grid)
	}
	if o.Exponent < 1 {
		return fmt.Errorf("%w: got %d", render.ErrExponent, o.Exponent)
	}
	if _, _, err := o.background(); err != nil {
		return err
	}
	return nil
}

// background resolves the background option to a color and transparency
// flag.
func (o *Options) background() (color.NRGBA, bool, error) {
	switch strings.ToLower(o.Background) {
	case "black", "":
		return color.NRGBA{A: 255}, false, nil
	case "transparent", "none":
		return color.NRGBA{}, true, nil
	}
	c, err := colorful.Hex(o.Background)
	if err != nil {
		return color.NRGBA{}, false, fmt.Errorf("%w: got %q", ErrBackground, o.Background)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, false, nil
}

// renderConfig builds the resolved renderer configuration. Validate must
// have succeeded first.
func (o *Options) renderConfig() render.Config {
	bg, transparent, _ := o.background()
	return render.Config{
		Mode:        render.Mode(o.Mode),
		Background:  bg,
		Transparent: transparent,
		Exponent:    o.Exponent,
		Trim:        o.Trim,
		KeepCanvas:  o.KeepCanvas,
		Margin:      render.DefaultMargin,
	}
}
