package render

import (
	"image"
	"image/color"
	"math"

	"github.com/darrynten/imagick-scripts/internal/label"
)

// Artifact is one rendered output image plus its canvas geometry.
//
// For untrimmed artifacts the geometry is the full frame with zero offsets.
// A trimmed artifact reports its cropped size, and, when virtual-canvas
// metadata is kept, its offset within the original frame.
type Artifact struct {
	// Image is the rendered result.
	Image image.Image

	// Label is the label this artifact isolates; -1 for the combined
	// single-image modes.
	Label int

	// Width and Height are the artifact dimensions in pixels.
	Width  int
	Height int

	// OffsetX and OffsetY locate the artifact within the original frame.
	// Zero unless trimming with virtual-canvas retention. Offsets may be
	// negative when the trim margin extends past the frame edge.
	OffsetX int
	OffsetY int
}

// Geometry renders the artifact's canvas record as WIDTHxHEIGHT+XOFF+YOFF.
func (a Artifact) Geometry() string {
	return formatGeometry(a.Width, a.Height, a.OffsetX, a.OffsetY)
}

// Render produces the output artifacts for a label map.
//
// Parameters:
//   - m: Label map built by the labeler. Read-only.
//   - count: Number of regions in the map (the highest label value).
//   - cfg: Renderer configuration. See Config.
//
// Returns:
//   - []Artifact: One artifact for modes 1-3; count+1 artifacts (labels
//     0..count in order) for modes 4-6.
//   - error: Non-nil for an invalid configuration or a ramp construction
//     failure.
//
// Rendering is deterministic and mutates nothing; per-label artifacts are
// fully independent of one another.
func Render(m *label.Map, count int, cfg Config) ([]Artifact, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var ramp *Ramp
	if cfg.Mode == ModeRamp || cfg.Mode == ModeSplitRamp {
		var err error
		ramp, err = NewRamp()
		if err != nil {
			return nil, err
		}
	}

	if cfg.Mode.Split() {
		artifacts := make([]Artifact, 0, count+1)
		for i := 0; i <= count; i++ {
			artifacts = append(artifacts, renderLabel(m, count, i, cfg, ramp))
		}
		return artifacts, nil
	}

	return []Artifact{renderCombined(m, count, cfg, ramp)}, nil
}

// renderCombined produces the single full-frame image for modes 1-3.
func renderCombined(m *label.Map, count int, cfg Config, ramp *Ramp) Artifact {
	rect := image.Rect(0, 0, m.W, m.H)

	var img image.Image
	switch cfg.Mode {
	case ModeIndex:
		out := image.NewGray(rect)
		for i, v := range m.Labels {
			out.Pix[i] = uint8(v)
		}
		img = out
	case ModeStretch:
		out := image.NewGray(rect)
		for i, v := range m.Labels {
			out.Pix[i] = stretchLevel(v, count)
		}
		img = out
	case ModeRamp:
		out := image.NewNRGBA(rect)
		for i, v := range m.Labels {
			c := ramp.At(spread(stretchLevel(v, count), cfg.Exponent))
			out.SetNRGBA(i%m.W, i/m.W, c)
		}
		img = out
	}

	return Artifact{Image: img, Label: -1, Width: m.W, Height: m.H}
}

// renderLabel produces the per-label image for one label in modes 4-6.
//
// Label 0 is the negated full-frame threshold mask: its own (background)
// pixels are white and every shape pixel takes the background color. For a
// label i > 0 the foreground color depends on the mode and every other
// pixel takes the background color.
func renderLabel(m *label.Map, count, lbl int, cfg Config, ramp *Ramp) Artifact {
	fg := foreground(lbl, count, cfg, ramp)
	bg := cfg.background()

	img := image.NewNRGBA(image.Rect(0, 0, m.W, m.H))
	for i, v := range m.Labels {
		x, y := i%m.W, i/m.W
		if v == lbl {
			img.SetNRGBA(x, y, fg)
		} else {
			img.SetNRGBA(x, y, bg)
		}
	}

	a := Artifact{Image: img, Label: lbl, Width: m.W, Height: m.H}
	if cfg.Trim {
		a = trim(a, m, lbl, cfg)
	}
	return a
}

// foreground resolves the color a label's own pixels are painted with.
func foreground(lbl, count int, cfg Config, ramp *Ramp) color.NRGBA {
	if lbl == 0 {
		// Negated mask: background becomes white.
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	switch cfg.Mode {
	case ModeSplitBinary:
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	case ModeSplitRamp:
		return ramp.At(spread(stretchLevel(lbl, count), cfg.Exponent))
	default: // ModeSplit
		g := stretchLevel(lbl, count)
		return color.NRGBA{R: g, G: g, B: g, A: 255}
	}
}

// stretchLevel maps a label index to its stretched graylevel.
//
// With count regions the distinct graylevels are 0..count, so the stretch
// factor is 255/count and the maximum label always reaches 255. Levels
// below half a step snap to pure black so near-zero interpolation floors
// render as true background.
func stretchLevel(lbl, count int) uint8 {
	if lbl <= 0 || count <= 0 {
		return 0
	}
	step := 255.0 / float64(count)
	v := float64(lbl) * step
	if v < step/2 {
		return 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(math.Round(v))
}
