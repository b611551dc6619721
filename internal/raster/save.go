package raster

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// jpegQuality is the encoding quality used for JPEG output artifacts.
const jpegQuality = 95

// Save encodes an image to disk, choosing the encoder from the file
// extension.
//
// Supported extensions:
//   - ".png" (and no extension): PNG
//   - ".jpg", ".jpeg": JPEG (quality 95; alpha is flattened by the encoder)
//   - ".bmp": BMP
//
// Returns an error for any other extension or if encoding/writing fails.
// Callers producing transparent output should use PNG.
func Save(path string, img image.Image) error {
	enc, err := encoderFor(path)
	if err != nil {
		return err
	}
	if err := imgio.Save(path, img, enc); err != nil {
		return fmt.Errorf("failed to write image %s: %w", path, err)
	}
	return nil
}

// encoderFor maps a file extension to an imgio encoder.
func encoderFor(path string) (imgio.Encoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", "":
		return imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(jpegQuality), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (use .png, .jpg, or .bmp)", filepath.Ext(path))
	}
}
