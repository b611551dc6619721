// Package label discovers the isolated white regions of a two-valued bitmap
// and assigns each one a unique integer label.
//
// Discovery works by repeated flood-fill probing. A scratch copy of the
// input is searched for a white seed pixel; the connected region around the
// seed is flood-filled to the next label value in the output map and to
// black in the scratch copy so it cannot be found again. The search repeats
// until no white pixel remains.
//
// Two search strategies are available:
//
//   - Exhaustive (the default): every remaining white pixel is found by
//     rescanning the whole bitmap in row-major order. Precise but O(regions
//     × area).
//
//   - Grid-assisted: only a regular grid of sample points is probed, spaced
//     a percentage of the width and height apart. O(grid points) and much
//     faster, but a region whose area misses every sample point is not
//     discovered. This is a disclosed precision/speed tradeoff, not a bug.
//
// # Connectivity
//
// Regions use 4-connectivity (north, east, south, west) by default, so
// diagonally touching shapes count as separate regions. Conn8 is available
// for callers that want diagonal adjacency to merge shapes.
//
// # Determinism
//
// Scan and sample orders are fixed, so the same input always produces the
// same label numbering. Label values start at 1; 0 is background. More than
// 255 regions is a hard error since labels must fit the 8-bit output
// encoding.
package label
