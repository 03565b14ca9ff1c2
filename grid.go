package srcimg

import (
	"bufio"
	"fmt"
	"io"
)

// Grid is the character-space size of the input: width is the longest
// line seen, height the number of line breaks. Computed once before any
// allocation and never mutated afterward.
type Grid struct {
	Width  int
	Height int
}

// Measure scans the input once, byte by byte, and returns its grid size.
// A line break increments the row count and resets the running column;
// a tab advances the running column by m.TabWidth, matching its expansion
// during rendering so the canvas is always wide enough; any other byte
// advances it by one. Width is floored at m.MinColumns.
//
// Measure touches no canvas state and may be repeated on a rewound
// reader; rendering re-reads the same input from the start.
func Measure(r io.Reader, m Metrics) (Grid, error) {
	br := bufio.NewReader(r)

	var g Grid
	col := 0
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Grid{}, fmt.Errorf("srcimg: measuring input: %w", err)
		}

		switch b {
		case '\n':
			g.Height++
			col = 0
		case '\t':
			col += m.TabWidth
		default:
			col++
		}

		if col > g.Width {
			g.Width = col
		}
	}

	if g.Width < m.MinColumns {
		g.Width = m.MinColumns
	}
	return g, nil
}
