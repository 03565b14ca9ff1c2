package srcimg

import "github.com/srcimg/srcimg/font"

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	// Default: plain text, built-in font and theme
//	r := srcimg.NewRenderer()
//
//	// Custom classifier and tighter layout
//	r := srcimg.NewRenderer(
//	    srcimg.WithClassifier(highlight.New()),
//	    srcimg.WithMetrics(srcimg.Metrics{Margin: 4, BorderSize: 1, TabWidth: 8, MinColumns: 40}),
//	)
type RendererOption func(*Renderer)

// WithMetrics sets the layout constants. Zero FontWidth/FontHeight are
// filled in from the renderer's font.
func WithMetrics(m Metrics) RendererOption {
	return func(r *Renderer) {
		r.metrics = m
	}
}

// WithPalette sets the color palette.
func WithPalette(p Palette) RendererOption {
	return func(r *Renderer) {
		r.palette = p
	}
}

// WithFont sets the bitmap font.
func WithFont(f *font.Font) RendererOption {
	return func(r *Renderer) {
		r.font = f
	}
}

// WithClassifier sets the classifier that annotates each line with
// color-control sequences.
func WithClassifier(c Classifier) RendererOption {
	return func(r *Renderer) {
		r.classifier = c
	}
}
