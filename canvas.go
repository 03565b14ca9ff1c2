package srcimg

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// ErrBadDimensions is returned when a canvas is requested with a
// non-positive width or height.
var ErrBadDimensions = errors.New("srcimg: canvas dimensions must be positive")

// Canvas is a rectangular pixel buffer: row-major RGBA, 4 bytes per pixel,
// top-to-bottom, left-to-right. It has exactly one writer for its lifetime
// (the rendering pipeline) and is handed to the encoder only after all
// mutation is complete.
type Canvas struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewCanvas creates a new canvas with the given dimensions.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	return &Canvas{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Data returns the raw pixel data (RGBA format).
func (c *Canvas) Data() []uint8 {
	return c.data
}

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) SetPixel(x, y int, col RGBA) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := (y*c.width + x) * 4
	c.data[i+0] = uint8(clamp255(col.R * 255))
	c.data[i+1] = uint8(clamp255(col.G * 255))
	c.data[i+2] = uint8(clamp255(col.B * 255))
	c.data[i+3] = uint8(clamp255(col.A * 255))
}

// GetPixel returns the color of a single pixel.
func (c *Canvas) GetPixel(x, y int) RGBA {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Transparent
	}
	i := (y*c.width + x) * 4
	return RGBA{
		R: float64(c.data[i+0]) / 255,
		G: float64(c.data[i+1]) / 255,
		B: float64(c.data[i+2]) / 255,
		A: float64(c.data[i+3]) / 255,
	}
}

// FillRect writes col to every pixel of the given rectangle, clipped to
// the canvas. The write is a flat overwrite in row-then-column order:
// later fills always win over earlier ones, no blending.
func (c *Canvas) FillRect(x, y, w, h int, col RGBA) {
	x0, y0 := x, y
	x1, y1 := x+w, y+h
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > c.width {
		x1 = c.width
	}
	if y1 > c.height {
		y1 = c.height
	}
	if x0 >= x1 || y0 >= y1 {
		return
	}

	r := uint8(clamp255(col.R * 255))
	g := uint8(clamp255(col.G * 255))
	b := uint8(clamp255(col.B * 255))
	a := uint8(clamp255(col.A * 255))

	for cy := y0; cy < y1; cy++ {
		i := (cy*c.width + x0) * 4
		for cx := x0; cx < x1; cx++ {
			c.data[i+0] = r
			c.data[i+1] = g
			c.data[i+2] = b
			c.data[i+3] = a
			i += 4
		}
	}
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col RGBA) {
	r := uint8(clamp255(col.R * 255))
	g := uint8(clamp255(col.G * 255))
	b := uint8(clamp255(col.B * 255))
	a := uint8(clamp255(col.A * 255))

	for i := 0; i < len(c.data); i += 4 {
		c.data[i+0] = r
		c.data[i+1] = g
		c.data[i+2] = b
		c.data[i+3] = a
	}
}

// ToImage converts the canvas to an image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	copy(img.Pix, c.data)
	return img
}

// EncodePNG writes the canvas to w in PNG format.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.ToImage())
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return c.EncodePNG(f)
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}
