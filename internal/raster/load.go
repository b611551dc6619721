package raster

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Decode reads and decodes an image file.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats
//     are PNG, JPEG, GIF, BMP, TIFF, and WebP.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the image
//     format and color model (e.g., *image.RGBA, *image.NRGBA, *image.YCbCr).
//   - error: Non-nil if the file cannot be opened, cannot be decoded, or has
//     zero area.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("image %s has zero size", path)
	}

	return img, nil
}

// Binarize reduces an image to a two-valued Bitmap.
//
// The pipeline is:
//  1. Grayscale conversion (luminance weighting).
//  2. Auto-contrast: linear stretch of the observed min..max intensity range
//     to the full 0..255 range, so dark-gray-on-light-gray inputs still
//     split cleanly.
//  3. Threshold at the midpoint (128): intensities at or above become white
//     (255), the rest black (0).
//
// A flat image (single intensity) skips the stretch and thresholds as-is,
// yielding an all-black or all-white bitmap.
func Binarize(img image.Image) *Bitmap {
	gray := imaging.Grayscale(img)
	bounds := gray.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	// Observed intensity range. Grayscale output has R == G == B.
	lo, hi := uint8(255), uint8(0)
	for y := 0; y < h; y++ {
		row := gray.Pix[y*gray.Stride:]
		for x := 0; x < w; x++ {
			v := row[x*4]
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	stretched := image.NewGray(image.Rect(0, 0, w, h))
	span := int(hi) - int(lo)
	for y := 0; y < h; y++ {
		row := gray.Pix[y*gray.Stride:]
		for x := 0; x < w; x++ {
			v := row[x*4]
			if span > 0 {
				v = uint8((int(v) - int(lo)) * 255 / span)
			}
			stretched.Pix[y*stretched.Stride+x] = v
		}
	}

	thresholded := segment.Threshold(stretched, 128)

	bm := NewBitmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			bm.Set(x, y, thresholded.GrayAt(x+thresholded.Rect.Min.X, y+thresholded.Rect.Min.Y).Y)
		}
	}
	return bm
}

// Load decodes an image file and binarizes it in one step.
//
// This is the standard entry point for the isolation pipeline. See Decode
// and Binarize for the individual stages.
func Load(path string) (*Bitmap, error) {
	img, err := Decode(path)
	if err != nil {
		return nil, err
	}
	return Binarize(img), nil
}
