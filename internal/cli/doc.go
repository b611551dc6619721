// Package cli resolves the command-line configuration surface and drives
// the isolation pipeline end to end: load and binarize the input, label its
// regions, render the artifacts, and write them out.
//
// Configuration is validated before any image work begins; a bad mode, grid
// spacing, exponent, background, or missing path aborts with nothing
// written. The pipeline itself publishes all-or-nothing: artifacts are only
// written after labeling and rendering fully succeed, and a failed write
// removes any artifacts already written in the same run.
package cli
