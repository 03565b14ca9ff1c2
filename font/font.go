// Package font provides fixed-size monospace bitmap glyph tables for the
// srcimg rasterizer. A Font exposes every input byte as a bit matrix of
// the same cell size; codes the underlying face cannot represent resolve
// to the blank glyph, so lookup is total and never indexes out of range.
package font

import (
	lru "github.com/hashicorp/golang-lru/v2"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"
)

// cacheSize covers the whole single-byte input space.
const cacheSize = 256

// Font is a fixed-cell bitmap font. Glyphs are extracted lazily from an
// x/image font face and memoized as bit rows.
//
// A Font is read-mostly but extraction mutates face state; it is meant
// for the renderer's single-threaded pipeline, not for concurrent use.
type Font struct {
	width  int
	height int
	ascent int
	face   xfont.Face
	cache  *lru.Cache[rune, []uint32]
	blank  []uint32
}

// FromFace builds a Font from any monospace x/image face. The cell is
// the face's advance by ascent+descent.
func FromFace(face xfont.Face) *Font {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()

	width := 0
	if adv, ok := face.GlyphAdvance('M'); ok {
		width = adv.Ceil()
	}
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	cache, _ := lru.New[rune, []uint32](cacheSize)
	return &Font{
		width:  width,
		height: height,
		ascent: ascent,
		face:   face,
		cache:  cache,
		blank:  make([]uint32, height),
	}
}

// Default returns the built-in 7x13 fixed font.
func Default() *Font {
	return FromFace(basicfont.Face7x13)
}

// Width returns the glyph cell width in pixels.
func (f *Font) Width() int {
	return f.width
}

// Height returns the glyph cell height in pixels.
func (f *Font) Height() int {
	return f.height
}

// Glyph returns the bit rows for one input byte: one uint32 per cell row,
// bit x set when pixel (x, y) is foreground. The returned slice is shared
// and must not be modified.
func (f *Font) Glyph(b byte) []uint32 {
	r := byteRune(b)
	if rows, ok := f.cache.Get(r); ok {
		return rows
	}
	rows := f.extract(r)
	f.cache.Add(r, rows)
	return rows
}

// byteRune maps one input byte to the rune used for glyph lookup. Input
// is one byte per cell by contract; bytes past ASCII are read as Latin-1.
func byteRune(b byte) rune {
	if b < 0x80 {
		return rune(b)
	}
	return charmap.ISO8859_1.DecodeByte(b)
}

// extract rasterizes one rune through the face's alpha mask into bit
// rows, clipped to the cell. Runes the face cannot supply yield the
// blank glyph.
func (f *Font) extract(r rune) []uint32 {
	dot := fixed.P(0, f.ascent)
	dr, mask, maskp, _, ok := f.face.Glyph(dot, r)
	if !ok {
		return f.blank
	}

	rows := make([]uint32, f.height)
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		if y < 0 || y >= f.height {
			continue
		}
		for x := dr.Min.X; x < dr.Max.X; x++ {
			if x < 0 || x >= f.width {
				continue
			}
			_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
			if a >= 0x8000 {
				rows[y] |= 1 << uint(x)
			}
		}
	}
	return rows
}
