// Package srcimg renders plain text into a raster image.
//
// # Overview
//
// srcimg turns source code into a PNG-ready pixel buffer: every input byte
// becomes one monospace bitmap glyph cell, colored by a per-character
// foreground/background assignment supplied by a pluggable classifier.
// The engine measures the character grid from the input, sizes the canvas,
// decodes the classifier's color-control protocol, rasterizes glyphs and
// composites a border frame.
//
// # Quick Start
//
//	import "github.com/srcimg/srcimg"
//
//	f, err := os.Open("main.c")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	r := srcimg.NewRenderer()
//	canvas, err := r.Render(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	canvas.SavePNG("main.png")
//
// # Architecture
//
// The pipeline is linear and single-threaded: measure the grid, allocate
// and clear the canvas, decode and rasterize one token stream to
// exhaustion, draw the border, hand the finished buffer to the encoder.
// Each stage runs exactly once per Render call; the first error aborts the
// whole run. The library is organized into:
//   - Public API: Renderer, Canvas, Palette, Metrics, Grid, Decoder
//   - font: fixed bitmap font tables built from x/image font faces
//   - highlight: a C-family syntax classifier for the control protocol
//
// # Coordinate System
//
// Character-grid and pixel coordinates both use top-left origin, X right,
// Y down. The canvas is row-major RGBA, 4 bytes per pixel.
package srcimg

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
