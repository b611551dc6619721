package raster

// Bitmap is a two-valued grayscale raster stored row-major.
//
// Pixel intensities are 0 (black, background) or 255 (white, shape) once the
// bitmap has been produced by Binarize. Dimensions are fixed at construction.
type Bitmap struct {
	// W is the bitmap width in pixels.
	W int

	// H is the bitmap height in pixels.
	H int

	// Pix holds intensities row-major; the pixel at (x, y) is Pix[y*W+x].
	Pix []uint8
}

// NewBitmap creates an all-black bitmap of the given dimensions.
func NewBitmap(w, h int) *Bitmap {
	return &Bitmap{
		W:   w,
		H:   h,
		Pix: make([]uint8, w*h),
	}
}

// At returns the intensity at (x, y). No bounds checking is performed;
// the caller must ensure coordinates are valid.
func (b *Bitmap) At(x, y int) uint8 {
	return b.Pix[y*b.W+x]
}

// Set stores an intensity at (x, y). No bounds checking is performed.
func (b *Bitmap) Set(x, y int, v uint8) {
	b.Pix[y*b.W+x] = v
}

// White reports whether the pixel at (x, y) is white (255).
func (b *Bitmap) White(x, y int) bool {
	return b.Pix[y*b.W+x] == 255
}

// Clone returns an independent copy of the bitmap.
//
// The labeler mutates a scratch copy in place while searching for seeds, so
// callers that need the original afterwards must clone first.
func (b *Bitmap) Clone() *Bitmap {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Bitmap{W: b.W, H: b.H, Pix: pix}
}

// Distinct counts the distinct intensity values present in the bitmap.
//
// A properly binarized input has exactly 2. All-black or all-white inputs
// have 1; callers should warn (not fail) on anything other than 2 and
// continue with best-effort labeling.
func (b *Bitmap) Distinct() int {
	var seen [256]bool
	count := 0
	for _, v := range b.Pix {
		if !seen[v] {
			seen[v] = true
			count++
		}
	}
	return count
}
