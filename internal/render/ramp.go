package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/interp"
)

// rampStopHex lists the 8 ramp stops from the black end to the violet end.
var rampStopHex = []string{
	"#000000", // black
	"#FF0000", // red
	"#FF7F00", // orange
	"#FFFF00", // yellow
	"#00FF00", // green
	"#00FFFF", // cyan
	"#0000FF", // blue
	"#EE82EE", // violet
}

// Ramp is a 256-entry color lookup table mapping a graylevel to a ramp
// color. Entry 0 is always pure black.
type Ramp struct {
	table [256]color.NRGBA
}

// NewRamp builds the lookup table by cubic-interpolating each RGB channel
// of the 8 ramp stops across the full 0..255 index range.
func NewRamp() (*Ramp, error) {
	n := len(rampStopHex)
	xs := make([]float64, n)
	rs := make([]float64, n)
	gs := make([]float64, n)
	bs := make([]float64, n)
	for i, hex := range rampStopHex {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("invalid ramp stop %q: %w", hex, err)
		}
		xs[i] = float64(i) * 255.0 / float64(n-1)
		rs[i] = c.R * 255.0
		gs[i] = c.G * 255.0
		bs[i] = c.B * 255.0
	}

	var cr, cg, cb interp.NaturalCubic
	if err := cr.Fit(xs, rs); err != nil {
		return nil, fmt.Errorf("failed to fit ramp red channel: %w", err)
	}
	if err := cg.Fit(xs, gs); err != nil {
		return nil, fmt.Errorf("failed to fit ramp green channel: %w", err)
	}
	if err := cb.Fit(xs, bs); err != nil {
		return nil, fmt.Errorf("failed to fit ramp blue channel: %w", err)
	}

	r := &Ramp{}
	for i := 0; i < 256; i++ {
		x := float64(i)
		r.table[i] = color.NRGBA{
			R: clampChannel(cr.Predict(x)),
			G: clampChannel(cg.Predict(x)),
			B: clampChannel(cb.Predict(x)),
			A: 255,
		}
	}
	// Cubic overshoot near the first stop must not lift the background off
	// pure black.
	r.table[0] = color.NRGBA{A: 255}
	return r, nil
}

// At returns the ramp color for a graylevel.
func (r *Ramp) At(level uint8) color.NRGBA {
	return r.table[level]
}

// spread applies the non-linear exponent transform to a stretched level,
// pushing low levels away from the ramp's black end. Exponent 1 is the
// identity.
func spread(level uint8, exponent int) uint8 {
	if exponent <= 1 || level == 0 {
		return level
	}
	v := math.Pow(float64(level)/255.0, 1.0/float64(exponent))
	return clampChannel(v * 255.0)
}

// clampChannel rounds a float to a uint8, clamping to [0, 255]. Cubic
// interpolation can overshoot the stop values slightly.
func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}
