// Package render turns a label map into output images.
//
// Six output modes are supported. Modes 1-3 produce a single combined image
// of the whole frame; modes 4-6 produce one image per label, including a
// negated full-frame mask for label 0 (the background).
//
//	Mode 1: raw label index as graylevel (0 = background, 1..N = shapes)
//	Mode 2: label index linearly stretched to the 0-255 range
//	Mode 3: stretched index mapped through a color ramp
//	Mode 4: one stretched-graylevel image per label
//	Mode 5: one pure black/white image per label
//	Mode 6: one color-ramp image per label
//
// # Stretching
//
// With N regions the distinct graylevels are 0..N, so the stretch factor is
// 255/N and label i maps to round(i*255/N); the maximum label always maps
// to 255. Levels that fall below half a step snap to pure black, so
// interpolation artifacts never leave a faint floor above the background.
//
// # Color Ramp
//
// The ramp is an 8-stop palette (black, red, orange, yellow, green, cyan,
// blue, violet) cubic-interpolated into a 256-entry lookup table. Before
// lookup the stretched level is passed through a spread transform
// (level^(1/exponent)) that pushes low label indices away from the ramp's
// black end; the exponent is the user-tunable spread parameter.
//
// # Per-Label Images and Trimming
//
// For label i > 0 the per-label image keeps that label's pixels at their
// mode-specific color and paints every other pixel in the configured
// background (opaque black, a custom color, or fully transparent). Label
// 0's image is the negated threshold mask: background pixels white,
// everything else background-colored. Trimming crops each per-label image
// to its region's bounding box plus a fixed border margin and can retain
// the original-frame offset as virtual-canvas metadata.
package render
