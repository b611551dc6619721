// Package raster handles the input and output ends of the shape isolation
// pipeline: decoding an arbitrary image file into a two-valued bitmap and
// encoding rendered results back to disk.
//
// The input pipeline is decode -> grayscale -> auto-contrast -> binarize.
// After binarization a Bitmap holds exactly two intensities, 0 (black) and
// 255 (white); white pixels are the shapes the labeler discovers. An input
// that collapses to fewer than two intensities (all black, all white) is
// still usable and is flagged by Distinct, not rejected.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with origin at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Supported Formats
//
// Decoding supports PNG, JPEG, GIF, BMP, TIFF, and WebP. Encoding is chosen
// by output file extension and supports PNG (default), JPEG, and BMP.
//
// # Error Handling
//
// Functions return errors for unreadable files, undecodable data, zero-size
// images, and unsupported output extensions. No partial files are left
// behind by Save on encoding failure.
package raster
