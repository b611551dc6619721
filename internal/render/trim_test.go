package render

import (
	"image"
	"testing"

	"github.com/darrynten/imagick-scripts/internal/label"
	"github.com/darrynten/imagick-scripts/internal/raster"
)

func TestRender_Trim(t *testing.T) {
	m, count := twoSquareMap(t)

	cfg := configWithMode(ModeSplit)
	cfg.Trim = true
	artifacts, err := Render(m, count, cfg)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(artifacts) != 3 {
		t.Fatalf("artifacts: got %d, want 3", len(artifacts))
	}

	// 10x10 squares plus a 5px margin on each side.
	for _, lbl := range []int{1, 2} {
		a := artifacts[lbl]
		if a.Width != 20 || a.Height != 20 {
			t.Errorf("label %d trimmed size: got %dx%d, want 20x20", lbl, a.Width, a.Height)
		}
	}

	// Background mask spans the whole frame, so its bounding box is the
	// frame plus the margin.
	if a := artifacts[0]; a.Width != 110 || a.Height != 110 {
		t.Errorf("label 0 trimmed size: got %dx%d, want 110x110", a.Width, a.Height)
	}

	// Shape pixels sit inside the margin; the border ring is background.
	img := artifacts[1].Image.(*image.NRGBA)
	if c := img.NRGBAAt(10, 10); c.R != 128 {
		t.Errorf("shape center: got %v, want graylevel 128", c)
	}
	if c := img.NRGBAAt(2, 2); c.R != 0 || c.A != 255 {
		t.Errorf("margin pixel: got %v, want opaque black", c)
	}
}

func TestRender_TrimOffsets(t *testing.T) {
	m, count := twoSquareMap(t)

	cfg := configWithMode(ModeSplit)
	cfg.Trim = true
	cfg.KeepCanvas = true
	artifacts, err := Render(m, count, cfg)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	tests := []struct {
		lbl          int
		wantX, wantY int
		wantW, wantH int
		wantGeometry string
	}{
		{0, -5, -5, 110, 110, "110x110+-5+-5"},
		{1, 5, 5, 20, 20, "20x20+5+5"},
		{2, 75, 75, 20, 20, "20x20+75+75"},
	}

	for _, tt := range tests {
		a := artifacts[tt.lbl]
		if a.OffsetX != tt.wantX || a.OffsetY != tt.wantY {
			t.Errorf("label %d offsets: got (%d,%d), want (%d,%d)", tt.lbl, a.OffsetX, a.OffsetY, tt.wantX, tt.wantY)
		}
		if a.Width != tt.wantW || a.Height != tt.wantH {
			t.Errorf("label %d size: got %dx%d, want %dx%d", tt.lbl, a.Width, a.Height, tt.wantW, tt.wantH)
		}
		if got := a.Geometry(); got != tt.wantGeometry {
			t.Errorf("label %d geometry: got %s, want %s", tt.lbl, got, tt.wantGeometry)
		}
	}
}

func TestRender_TrimWithoutKeepCanvasDropsOffsets(t *testing.T) {
	m, count := twoSquareMap(t)

	cfg := configWithMode(ModeSplit)
	cfg.Trim = true
	artifacts, err := Render(m, count, cfg)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for _, a := range artifacts {
		if a.OffsetX != 0 || a.OffsetY != 0 {
			t.Errorf("label %d offsets without keep-canvas: got (%d,%d), want (0,0)", a.Label, a.OffsetX, a.OffsetY)
		}
	}
}

func TestRender_TrimIgnoredForCombinedModes(t *testing.T) {
	m, count := twoSquareMap(t)

	cfg := configWithMode(ModeStretch)
	cfg.Trim = true
	artifacts, err := Render(m, count, cfg)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if a := artifacts[0]; a.Width != 100 || a.Height != 100 {
		t.Errorf("combined artifact size: got %dx%d, want untrimmed 100x100", a.Width, a.Height)
	}
}

func TestTrim_MissingLabelKeepsFrame(t *testing.T) {
	m := label.NewMap(30, 30)
	cfg := configWithMode(ModeSplit)
	cfg.Trim = true

	a := Artifact{Image: image.NewNRGBA(image.Rect(0, 0, 30, 30)), Label: 7, Width: 30, Height: 30}
	out := trim(a, m, 7, cfg)
	if out.Width != 30 || out.Height != 30 {
		t.Errorf("missing label trim: got %dx%d, want the untouched frame", out.Width, out.Height)
	}
}

func TestRender_TrimEdgeRegion(t *testing.T) {
	// A region flush against the top-left corner still gets its full
	// margin, padded with background.
	bm := raster.NewBitmap(40, 40)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			bm.Set(x, y, 255)
		}
	}
	m, count, err := label.Regions(bm, label.Options{})
	if err != nil {
		t.Fatalf("Regions failed: %v", err)
	}

	cfg := configWithMode(ModeSplitBinary)
	cfg.Trim = true
	cfg.KeepCanvas = true
	artifacts, err := Render(m, count, cfg)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	a := artifacts[1]
	if a.Width != 18 || a.Height != 18 {
		t.Errorf("size: got %dx%d, want 18x18", a.Width, a.Height)
	}
	if a.OffsetX != -5 || a.OffsetY != -5 {
		t.Errorf("offsets: got (%d,%d), want (-5,-5)", a.OffsetX, a.OffsetY)
	}
}
