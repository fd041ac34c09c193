package hue

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		h, s, l int
	}{
		{"red", 255, 0, 0, 0, 100, 50},
		{"green", 0, 255, 0, 120, 100, 50},
		{"blue", 0, 0, 255, 240, 100, 50},
		{"white", 255, 255, 255, 0, 0, 100},
		{"black", 0, 0, 0, 0, 0, 0},
		{"sage mask", 175, 215, 175, 120, 33, 76},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := RGBToHSL(tt.r, tt.g, tt.b)
			require.Equal(t, [3]int{tt.h, tt.s, tt.l}, [3]int{h, s, l})
		})
	}
}

func TestHSLToRGB_RoundTrip(t *testing.T) {
	orig := color.RGBA{10, 200, 30, 255}

	c := NewColor(orig.R, orig.G, orig.B)
	r, g, b := HSLToRGB(c.Hue(), c.Sat(), c.Lum())

	if absDiff(r, orig.R) > 2 ||
		absDiff(g, orig.G) > 2 ||
		absDiff(b, orig.B) > 2 {
		t.Errorf("round trip mismatch: start=%v end=%v,%v,%v", orig, r, g, b)
	}
}

func TestColorSettersKeepViewsInSync(t *testing.T) {
	c := NewColor(255, 0, 0)

	c.SetHue(120)
	r, g, b := c.RGB()
	require.Equal(t, [3]uint8{0, 255, 0}, [3]uint8{r, g, b})

	c.SetSat(0)
	r, g, b = c.RGB()
	require.Equal(t, r, g)
	require.Equal(t, g, b)
	require.Equal(t, 50, c.Lum())

	c.SetRGB(0, 0, 255)
	require.Equal(t, 240, c.Hue())
	require.Equal(t, 100, c.Sat())
	require.Equal(t, 50, c.Lum())
}

func TestColorClampsOutOfRange(t *testing.T) {
	c := FromHSL(480, 140, -20)
	require.Equal(t, 120, c.Hue())
	require.Equal(t, 100, c.Sat())
	require.Equal(t, 0, c.Lum())

	c.SetHue(-90)
	require.Equal(t, 270, c.Hue())
	c.SetLum(250)
	require.Equal(t, 100, c.Lum())
}

func TestFromColorIgnoresPremultipliedAlpha(t *testing.T) {
	c := FromColor(color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	r, g, b := c.RGB()
	require.Equal(t, [3]uint8{200, 100, 50}, [3]uint8{r, g, b})
}

func TestAverageHue(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})   // 0°
	img.Set(1, 0, color.RGBA{255, 255, 0, 255}) // 60°

	avg := AverageHue(img)

	if avg < 29 || avg > 31 {
		t.Errorf("expected ~30°, got %f", avg)
	}
}

func TestMeanWrapsAroundZero(t *testing.T) {
	var m Mean
	m.Add(350)
	m.Add(10)
	got := m.Degrees()
	if got > 0.01 && got < 359.99 {
		t.Errorf("expected ~0°, got %f", got)
	}

	var empty Mean
	require.Zero(t, empty.Degrees())
}
