package srcimg

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
)

// rgbaBytes returns the 4 canvas bytes a color converts to on write.
func rgbaBytes(c RGBA) [4]uint8 {
	return [4]uint8{
		uint8(clamp255(c.R * 255)),
		uint8(clamp255(c.G * 255)),
		uint8(clamp255(c.B * 255)),
		uint8(clamp255(c.A * 255)),
	}
}

// pixelIs reports whether the pixel at (x, y) holds exactly the bytes of c.
func pixelIs(cv *Canvas, x, y int, c RGBA) bool {
	want := rgbaBytes(c)
	i := (y*cv.Width() + x) * 4
	d := cv.Data()
	return d[i+0] == want[0] && d[i+1] == want[1] && d[i+2] == want[2] && d[i+3] == want[3]
}

func TestNewCanvas_BadDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{name: "zero width", w: 0, h: 10},
		{name: "zero height", w: 10, h: 0},
		{name: "negative", w: -5, h: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCanvas(tt.w, tt.h); !errors.Is(err, ErrBadDimensions) {
				t.Errorf("NewCanvas(%d, %d) error = %v, want ErrBadDimensions", tt.w, tt.h, err)
			}
		})
	}
}

func TestNewCanvas_BufferInvariant(t *testing.T) {
	cv, err := NewCanvas(17, 9)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(cv.Data()), 17*9*4; got != want {
		t.Fatalf("len(Data()) = %d, want %d", got, want)
	}

	// The invariant must hold through every mutation.
	cv.Clear(White)
	cv.FillRect(-3, -3, 100, 100, Black)
	cv.SetPixel(5, 5, White)
	if got, want := len(cv.Data()), 17*9*4; got != want {
		t.Fatalf("len(Data()) after drawing = %d, want %d", got, want)
	}
}

func TestSetPixel(t *testing.T) {
	cv, _ := NewCanvas(10, 10)
	cv.SetPixel(3, 7, RGB(1, 0, 0))

	i := (7*10 + 3) * 4
	d := cv.Data()
	if d[i+0] != 255 || d[i+1] != 0 || d[i+2] != 0 || d[i+3] != 255 {
		t.Errorf("raw data = (%d, %d, %d, %d), want (255, 0, 0, 255)",
			d[i+0], d[i+1], d[i+2], d[i+3])
	}
}

func TestSetPixel_OutOfBounds(t *testing.T) {
	cv, _ := NewCanvas(10, 10)
	cv.Clear(Black)

	original := make([]uint8, len(cv.Data()))
	copy(original, cv.Data())

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		cv.SetPixel(c.x, c.y, White)
	}

	for i, v := range cv.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d: got %d, want %d", i, v, original[i])
		}
	}
}

func TestFillRect(t *testing.T) {
	cv, _ := NewCanvas(8, 8)
	cv.Clear(Black)
	cv.FillRect(2, 3, 3, 2, White)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inside := x >= 2 && x < 5 && y >= 3 && y < 5
			want := Black
			if inside {
				want = White
			}
			if !pixelIs(cv, x, y, want) {
				t.Errorf("pixel (%d, %d) = %v, inside=%v", x, y, cv.GetPixel(x, y), inside)
			}
		}
	}
}

func TestFillRect_LastWriteWins(t *testing.T) {
	cv, _ := NewCanvas(6, 6)
	cv.Clear(Black)
	cv.FillRect(0, 0, 4, 4, RGB(1, 0, 0))
	cv.FillRect(2, 2, 4, 4, RGB(0, 1, 0))

	if !pixelIs(cv, 3, 3, RGB(0, 1, 0)) {
		t.Errorf("overlap pixel (3,3) = %v, want later fill", cv.GetPixel(3, 3))
	}
	if !pixelIs(cv, 1, 1, RGB(1, 0, 0)) {
		t.Errorf("non-overlap pixel (1,1) = %v, want earlier fill", cv.GetPixel(1, 1))
	}
}

func TestFillRect_Clipped(t *testing.T) {
	cv, _ := NewCanvas(4, 4)
	cv.Clear(Black)

	// Must not panic and must only touch in-bounds pixels.
	cv.FillRect(-2, -2, 3, 3, White)
	cv.FillRect(3, 3, 10, 10, White)
	cv.FillRect(10, 10, 5, 5, White)
	cv.FillRect(0, 0, 0, 0, White)

	if !pixelIs(cv, 0, 0, White) {
		t.Error("clipped fill missed (0,0)")
	}
	if !pixelIs(cv, 3, 3, White) {
		t.Error("clipped fill missed (3,3)")
	}
	if !pixelIs(cv, 2, 1, Black) {
		t.Error("clipped fill touched (2,1)")
	}
}

func TestClear(t *testing.T) {
	cv, _ := NewCanvas(5, 5)
	cv.Clear(RGB(0, 0, 1))
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if !pixelIs(cv, x, y, RGB(0, 0, 1)) {
				t.Fatalf("pixel (%d, %d) = %v after Clear", x, y, cv.GetPixel(x, y))
			}
		}
	}
}

func TestEncodePNG_Roundtrip(t *testing.T) {
	cv, _ := NewCanvas(4, 3)
	cv.Clear(Black)
	cv.SetPixel(1, 2, RGB(1, 0, 0))

	var buf bytes.Buffer
	if err := cv.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Fatalf("decoded bounds = %v, want 4x3", img.Bounds())
	}

	r, g, b, a := img.At(1, 2).RGBA()
	if r != 65535 || g != 0 || b != 0 || a != 65535 {
		t.Errorf("decoded pixel (1,2) = (%d, %d, %d, %d), want opaque red", r, g, b, a)
	}
	r, g, b, _ = img.At(0, 0).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("decoded pixel (0,0) = (%d, %d, %d), want black", r, g, b)
	}
}
