package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/darrynten/imagick-scripts/internal/label"
	"github.com/darrynten/imagick-scripts/internal/raster"
	"github.com/darrynten/imagick-scripts/internal/render"
)

// Run executes the full isolation pipeline for validated options.
//
// Stages: load and binarize the input, label its regions, render the
// artifacts, write them out. The first three stages touch no files, so any
// failure there leaves the filesystem untouched; a failure while writing
// removes the artifacts already written in this run before returning.
//
// Canvas geometry listings (when enabled) are printed to listOut, one line
// per artifact.
func Run(opts *Options, listOut io.Writer) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	bm, err := raster.Load(opts.Input)
	if err != nil {
		return err
	}
	if n := bm.Distinct(); n != 2 {
		log.Printf("warning: input has %d distinct graylevels, not 2; labeling best-effort", n)
	}

	m, count, err := label.Regions(bm, label.Options{GridSpacing: opts.Grid, Conn: label.Conn4})
	if err != nil {
		return err
	}

	cfg := opts.renderConfig()
	artifacts, err := render.Render(m, count, cfg)
	if err != nil {
		return err
	}

	if err := writeArtifacts(artifacts, opts.Output, cfg.Mode.Split()); err != nil {
		return err
	}

	if opts.Trim && opts.KeepCanvas && opts.ListCanvas {
		for _, a := range artifacts {
			fmt.Fprintln(listOut, a.Geometry())
		}
	}
	return nil
}

// writeArtifacts publishes the rendered artifacts.
//
// Single-artifact modes write to the output path as-is; split modes suffix
// the path stem with the artifact's label. All-or-nothing: a failed write
// removes anything already written in this call.
func writeArtifacts(artifacts []render.Artifact, output string, split bool) error {
	var written []string
	for _, a := range artifacts {
		path := output
		if split {
			path = artifactPath(output, a.Label)
		}
		if err := raster.Save(path, a.Image); err != nil {
			for _, p := range written {
				os.Remove(p)
			}
			return err
		}
		written = append(written, path)
	}
	return nil
}

// artifactPath suffixes the output path's stem with a label number:
// out.png -> out-1.png.
func artifactPath(output string, lbl int) string {
	ext := filepath.Ext(output)
	stem := strings.TrimSuffix(output, ext)
	return fmt.Sprintf("%s-%d%s", stem, lbl, ext)
}
