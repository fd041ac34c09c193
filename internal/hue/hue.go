// Package hue holds the HSL color model shared by every transform: a Color
// that keeps its RGB and HSL views in step, the purity metric, and the
// run-scoped hue swapper.
package hue

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGB color with a cached integer HSL view.
// Hue is in [0,360), saturation and luminosity are in [0,100].
//
// Every setter recomputes the other representation, so the two never drift.
type Color struct {
	r, g, b uint8
	h, s, l int
}

// NewColor builds a Color from RGB components.
func NewColor(r, g, b uint8) *Color {
	c := &Color{}
	c.SetRGB(r, g, b)
	return c
}

// FromHSL builds a Color from HSL components. Out-of-range values are
// wrapped (hue) or clamped (saturation, luminosity).
func FromHSL(h, s, l int) *Color {
	c := &Color{h: wrapHue(h), s: clampPercent(s), l: clampPercent(l)}
	c.updateRGB()
	return c
}

// FromColor converts any color.Color, ignoring alpha. Components are read
// non-premultiplied so translucent pixels keep their hue.
func FromColor(c color.Color) *Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewColor(n.R, n.G, n.B)
}

func (c *Color) RGB() (r, g, b uint8) { return c.r, c.g, c.b }
func (c *Color) Hue() int             { return c.h }
func (c *Color) Sat() int             { return c.s }
func (c *Color) Lum() int             { return c.l }

// RGBA returns the color as a fully opaque color.RGBA.
func (c *Color) RGBA() color.RGBA {
	return color.RGBA{R: c.r, G: c.g, B: c.b, A: math.MaxUint8}
}

func (c *Color) SetRGB(r, g, b uint8) {
	c.r, c.g, c.b = r, g, b
	c.h, c.s, c.l = RGBToHSL(r, g, b)
}

func (c *Color) SetHue(h int) {
	c.h = wrapHue(h)
	c.updateRGB()
}

func (c *Color) SetSat(s int) {
	c.s = clampPercent(s)
	c.updateRGB()
}

func (c *Color) SetLum(l int) {
	c.l = clampPercent(l)
	c.updateRGB()
}

func (c *Color) updateRGB() {
	c.r, c.g, c.b = HSLToRGB(c.h, c.s, c.l)
}

// RGBToHSL converts 8-bit RGB to integer HSL.
func RGBToHSL(r, g, b uint8) (h, s, l int) {
	cf := colorful.Color{
		R: float64(r) / math.MaxUint8,
		G: float64(g) / math.MaxUint8,
		B: float64(b) / math.MaxUint8,
	}
	hf, sf, lf := cf.Hsl()
	return wrapHue(int(math.Round(hf))),
		clampPercent(int(math.Round(sf * 100))),
		clampPercent(int(math.Round(lf * 100)))
}

// HSLToRGB converts integer HSL to 8-bit RGB.
func HSLToRGB(h, s, l int) (r, g, b uint8) {
	cf := colorful.Hsl(
		float64(wrapHue(h)),
		float64(clampPercent(s))/100,
		float64(clampPercent(l))/100,
	)
	return cf.Clamped().RGB255()
}

// Mean accumulates hues as unit vectors so that 350° and 10° average to 0°
// instead of 180°.
type Mean struct {
	sumX, sumY float64
	count      int
}

func (m *Mean) Add(h int) {
	rad := float64(h) * math.Pi / 180
	m.sumX += math.Cos(rad)
	m.sumY += math.Sin(rad)
	m.count++
}

// Degrees returns the mean hue in [0,360), or 0 if nothing was added.
func (m *Mean) Degrees() float64 {
	if m.count == 0 {
		return 0
	}
	angle := math.Atan2(m.sumY/float64(m.count), m.sumX/float64(m.count)) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	return angle
}

// AverageHue calculates the average hue of an image.
func AverageHue(img image.Image) float64 {
	var m Mean
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			m.Add(FromColor(img.At(x, y)).Hue())
		}
	}
	return m.Degrees()
}

func wrapHue(h int) int {
	return ((h % 360) + 360) % 360
}

func clampPercent(v int) int {
	return min(max(v, 0), 100)
}
