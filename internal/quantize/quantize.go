// Package quantize collapses continuous HSL components into a small number of
// bands so that an image flattens into paintable regions.
package quantize

import (
	"math"

	"github.com/erinpentecost/paintref/internal/hue"
)

const (
	// DefaultLumSatBand splits luminosity and saturation into ten bands.
	DefaultLumSatBand = 10
	// DefaultHueBand splits the color wheel into forty bands.
	DefaultHueBand = 9
)

// Quantizer holds the band widths. The zero value is not usable; use New.
type Quantizer struct {
	LumSatBand int
	HueBand    int
}

func New() *Quantizer {
	return &Quantizer{
		LumSatBand: DefaultLumSatBand,
		HueBand:    DefaultHueBand,
	}
}

// Simplify100 maps a luminosity or saturation in [0,100] to the midpoint of
// its band: 0-9 is 5, 10-19 is 15, and so on. 100 joins the top band.
func (q *Quantizer) Simplify100(x int) int {
	x = min(max(x, 0), 100)
	if x == 100 {
		x = 99
	}
	return x - x%q.LumSatBand + q.LumSatBand/2
}

// Simplify360 maps a hue to its band: 0 stays 0, 1-8 is 4, 9-17 is 13, and
// so on up to 355. 360 wraps to 0.
func (q *Quantizer) Simplify360(x int) int {
	x = ((x % 360) + 360) % 360
	if x == 0 {
		return 0
	}
	return x - x%q.HueBand + q.HueBand/2
}

// Simplify quantizes all three HSL components of c in place.
func (q *Quantizer) Simplify(c *hue.Color) {
	c.SetLum(q.Simplify100(c.Lum()))
	c.SetSat(q.Simplify100(c.Sat()))
	c.SetHue(q.Simplify360(c.Hue()))
}

// HueBands lists the distinct values Simplify360 can return, ascending.
func (q *Quantizer) HueBands() []int {
	seen := map[int]bool{}
	bands := []int{}
	for h := range 360 {
		b := q.Simplify360(h)
		if !seen[b] {
			seen[b] = true
			bands = append(bands, b)
		}
	}
	return bands
}

// Narrow100 rescales a [0,100] value into a band of the given width,
// offset by half the band.
func Narrow100(value, band float64) float64 {
	return value*band/100 + math.Round(band/2)
}
