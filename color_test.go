package srcimg

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{name: "short rgb", hex: "#fff", want: White},
		{name: "rrggbb", hex: "#ff0000", want: RGB(1, 0, 0)},
		{name: "no hash", hex: "000000", want: Black},
		{name: "rrggbbaa", hex: "#00000000", want: RGBA2(0, 0, 0, 0)},
		{name: "invalid length", hex: "#fffff", want: Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if !colorsClose(got, tt.want) {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestRGBA_Color(t *testing.T) {
	c := RGB(1, 0, 0).Color()
	want := color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	if c != want {
		t.Errorf("Color() = %v, want %v", c, want)
	}
}

func TestRGBA_Color_Clamped(t *testing.T) {
	c := RGBA2(2, -1, 0.5, 1).Color()
	want := color.NRGBA{R: 255, G: 0, B: 127, A: 255}
	if c != want {
		t.Errorf("Color() = %v, want %v", c, want)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	if !colorsClose(got, White) {
		t.Errorf("FromColor(white) = %v, want %v", got, White)
	}
}

func TestLerp(t *testing.T) {
	mid := Black.Lerp(White, 0.5)
	want := RGB(0.5, 0.5, 0.5)
	if !colorsClose(mid, want) {
		t.Errorf("Lerp(0.5) = %v, want %v", mid, want)
	}
	if got := Black.Lerp(White, 0); !colorsClose(got, Black) {
		t.Errorf("Lerp(0) = %v, want black", got)
	}
	if got := Black.Lerp(White, 1); !colorsClose(got, White) {
		t.Errorf("Lerp(1) = %v, want white", got)
	}
}

// colorsClose compares colors with a small tolerance for float rounding.
func colorsClose(a, b RGBA) bool {
	const tolerance = 0.005
	close := func(x, y float64) bool {
		d := x - y
		return d < tolerance && d > -tolerance
	}
	return close(a.R, b.R) && close(a.G, b.G) && close(a.B, b.B) && close(a.A, b.A)
}
