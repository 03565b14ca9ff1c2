package srcimg

// Metrics holds the layout constants that map character-grid coordinates
// to pixel coordinates. All arithmetic is exact integer math.
type Metrics struct {
	// FontWidth and FontHeight are the glyph cell size in pixels.
	// Zero means "take the dimensions of the renderer's font".
	FontWidth  int
	FontHeight int

	// Margin is the blank space around the text area, in pixels.
	Margin int

	// LineSpacing is the extra pixels between text rows.
	LineSpacing int

	// BorderSize is the thickness of the frame strips, in pixels.
	BorderSize int

	// TabWidth is the number of space glyphs a tab expands to.
	TabWidth int

	// MinColumns floors the measured grid width so degenerate input
	// never yields a zero-width canvas.
	MinColumns int
}

// DefaultMetrics returns the standard layout constants.
func DefaultMetrics() Metrics {
	return Metrics{
		Margin:      10,
		LineSpacing: 1,
		BorderSize:  2,
		TabWidth:    4,
		MinColumns:  80,
	}
}

// CanvasSize returns the pixel dimensions of the canvas for a grid.
func (m Metrics) CanvasSize(g Grid) (w, h int) {
	w = m.Margin*2 + g.Width*m.FontWidth
	h = m.Margin*2 + g.Height*(m.FontHeight+m.LineSpacing)
	return w, h
}

// CellX returns the pixel x of the left edge of a grid column.
func (m Metrics) CellX(col int) int {
	return m.Margin + col*m.FontWidth
}

// CellY returns the pixel y of the top edge of a grid row.
func (m Metrics) CellY(row int) int {
	return m.Margin + row*(m.FontHeight+m.LineSpacing)
}
