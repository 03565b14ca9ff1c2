package srcimg

import (
	"errors"
	"fmt"
	"io"
)

// The color-control protocol is a closed contract between classifier and
// renderer: Marker introduces a fixed 4-byte sequence
//
//	Marker, fgIndex, bgIndex, terminator
//
// that switches the active color pair. The classifier guarantees Marker
// never appears as literal text; the terminator is fixed framing and
// carries no information.
const (
	// Marker introduces a color-control sequence.
	Marker byte = 0x1B

	// seqLen is the total length of a control sequence, marker included.
	seqLen = 4
)

// Protocol violations. Both are contract bugs between classifier and
// renderer and are always fatal, never downgraded to a default color.
var (
	// ErrPaletteRange reports a control sequence whose palette index
	// falls outside the palette.
	ErrPaletteRange = errors.New("srcimg: control sequence palette index out of range")

	// ErrTruncatedSequence reports a control sequence cut off by the
	// end of the stream.
	ErrTruncatedSequence = errors.New("srcimg: truncated control sequence")
)

// AppendColorSwitch appends the control sequence selecting (fg, bg) to
// dst. Classifiers use this to build annotated lines for the decoder.
func AppendColorSwitch(dst []byte, fg, bg Role) []byte {
	return append(dst, Marker, byte(fg), byte(bg), 0x00)
}

// Token is one literal character tagged with the color pair active at the
// point it was decoded. Color-change instructions never surface as tokens;
// the decoder absorbs them into its state.
type Token struct {
	Ch byte
	FG Role
	BG Role
}

// Decoder parses a classifier-annotated buffer into an ordered stream of
// tagged literal characters. The initial active pair is
// (RoleDefault, RoleBackground).
type Decoder struct {
	buf     []byte
	pos     int
	fg, bg  Role
	palette int // palette length, for index validation
}

// NewDecoder returns a decoder over one annotated buffer.
func NewDecoder(annotated []byte, p Palette) *Decoder {
	return &Decoder{
		buf:     annotated,
		fg:      RoleDefault,
		bg:      RoleBackground,
		palette: len(p),
	}
}

// Next returns the next literal token. It returns io.EOF when the buffer
// is exhausted, ErrTruncatedSequence if the stream ends inside a control
// sequence, and ErrPaletteRange if a decoded index does not resolve
// inside the palette.
func (d *Decoder) Next() (Token, error) {
	for d.pos < len(d.buf) {
		b := d.buf[d.pos]
		if b != Marker {
			d.pos++
			return Token{Ch: b, FG: d.fg, BG: d.bg}, nil
		}
		if err := d.colorSwitch(); err != nil {
			return Token{}, err
		}
	}
	return Token{}, io.EOF
}

// colorSwitch consumes one control sequence at d.pos and updates the
// active pair. The terminator byte is framing only; its value is not
// inspected.
func (d *Decoder) colorSwitch() error {
	if len(d.buf)-d.pos < seqLen {
		return fmt.Errorf("%w: %d byte(s) after marker at offset %d",
			ErrTruncatedSequence, len(d.buf)-d.pos-1, d.pos)
	}
	fg := int(d.buf[d.pos+1])
	bg := int(d.buf[d.pos+2])
	if fg >= d.palette || bg >= d.palette {
		return fmt.Errorf("%w: fg=%d bg=%d palette=%d at offset %d",
			ErrPaletteRange, fg, bg, d.palette, d.pos)
	}
	d.fg = Role(fg)
	d.bg = Role(bg)
	d.pos += seqLen
	return nil
}
