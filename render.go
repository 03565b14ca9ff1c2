package srcimg

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/srcimg/srcimg/font"
)

// maxLine bounds the line length the render scanner accepts.
const maxLine = 1 << 20

// Classifier annotates one line of text with color-control sequences.
// The returned buffer is at least as long as the input and contains the
// literal bytes interleaved with sequences built by AppendColorSwitch.
// Classifiers must never emit Marker except as a protocol introducer.
type Classifier interface {
	Annotate(line []byte) []byte
}

// PlainClassifier annotates nothing: every character renders with the
// default foreground on the background color.
type PlainClassifier struct{}

// Annotate returns the line unchanged.
func (PlainClassifier) Annotate(line []byte) []byte { return line }

// Renderer carries all rendering state: layout metrics, palette, font and
// classifier. There is no package-level mutable state; a Renderer value is
// the whole pipeline context.
type Renderer struct {
	metrics    Metrics
	palette    Palette
	font       *font.Font
	classifier Classifier
}

// cursor is the character-space pen position for one render pass.
type cursor struct {
	col int
	row int
}

// NewRenderer creates a renderer with the default metrics, palette, font
// and (plain) classifier, then applies the given options.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		metrics:    DefaultMetrics(),
		palette:    DefaultPalette(),
		font:       font.Default(),
		classifier: PlainClassifier{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.metrics.FontWidth == 0 {
		r.metrics.FontWidth = r.font.Width()
	}
	if r.metrics.FontHeight == 0 {
		r.metrics.FontHeight = r.font.Height()
	}
	return r
}

// Render runs the full pipeline over the input and returns the finished
// canvas: measure, allocate, clear, decode and rasterize line by line,
// draw the border. The input is read twice (measure, then render), so it
// must be rewindable. Each stage runs exactly once; the first error
// aborts the whole run with no partial output.
func (r *Renderer) Render(input io.ReadSeeker) (*Canvas, error) {
	grid, err := Measure(input, r.metrics)
	if err != nil {
		return nil, err
	}
	if _, err := input.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("srcimg: rewinding input: %w", err)
	}

	w, h := r.metrics.CanvasSize(grid)
	Logger().Debug("measured input",
		"cols", grid.Width, "rows", grid.Height, "width_px", w, "height_px", h)

	canvas, err := NewCanvas(w, h)
	if err != nil {
		return nil, err
	}
	canvas.Clear(r.palette.Color(RoleBackground))

	cur := cursor{}
	sc := bufio.NewScanner(input)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		annotated := r.classifier.Annotate(sc.Bytes())
		dec := NewDecoder(annotated, r.palette)
		for {
			tok, err := dec.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, err
			}
			r.drawGlyph(canvas, &cur, tok)
		}
		cur.row++
		cur.col = 0
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("srcimg: reading input: %w", err)
	}

	r.drawBorder(canvas)
	Logger().Info("rendered image", "width_px", w, "height_px", h)
	return canvas, nil
}

// RenderBytes renders an in-memory input.
func (r *Renderer) RenderBytes(input []byte) (*Canvas, error) {
	return r.Render(bytes.NewReader(input))
}

// drawGlyph draws one tagged character at the cursor and advances it.
// A line break moves the pen down without drawing; a tab expands to
// TabWidth space cells carrying the token's color pair.
func (r *Renderer) drawGlyph(c *Canvas, cur *cursor, tok Token) {
	switch tok.Ch {
	case '\n':
		cur.row++
		cur.col = 0
		return
	case '\t':
		sp := tok
		sp.Ch = ' '
		for i := 0; i < r.metrics.TabWidth; i++ {
			r.drawCell(c, cur, sp)
		}
		return
	}
	r.drawCell(c, cur, tok)
}

// drawCell rasterizes one glyph cell: fg for set font bits, bg for clear
// ones, flat overwrite. The cursor advances one column.
func (r *Renderer) drawCell(c *Canvas, cur *cursor, tok Token) {
	fg := r.palette.Color(tok.FG)
	bg := r.palette.Color(tok.BG)
	rows := r.font.Glyph(tok.Ch)

	x0 := r.metrics.CellX(cur.col)
	y0 := r.metrics.CellY(cur.row)
	for fy := 0; fy < r.metrics.FontHeight; fy++ {
		var row uint32
		if fy < len(rows) {
			row = rows[fy]
		}
		for fx := 0; fx < r.metrics.FontWidth; fx++ {
			if row&(1<<uint(fx)) != 0 {
				c.SetPixel(x0+fx, y0+fy, fg)
			} else {
				c.SetPixel(x0+fx, y0+fy, bg)
			}
		}
	}
	cur.col++
}

// drawBorder composites the frame: four strips of BorderSize thickness in
// the border color, overwriting whatever was drawn underneath. Always the
// last drawing step, and idempotent.
func (r *Renderer) drawBorder(c *Canvas) {
	bs := r.metrics.BorderSize
	col := r.palette.Color(RoleBorder)
	c.FillRect(0, 0, c.Width(), bs, col)
	c.FillRect(0, 0, bs, c.Height(), col)
	c.FillRect(0, c.Height()-bs, c.Width(), bs, col)
	c.FillRect(c.Width()-bs, 0, bs, c.Height(), col)
}
