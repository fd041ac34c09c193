package transform

import (
	"fmt"
	"math"

	"github.com/erinpentecost/paintref/internal/hue"
	"github.com/erinpentecost/paintref/internal/quantize"
)

// HueRange isolates one hue: pixels within half a hue band of h are mapped
// to their purity the way FA-3-Only-Saturation does, and everything else is
// flattened to a light gray so the isolated hue stands out.
//
// rank is the hue's position in the frequency ranking and only affects the
// name.
func HueRange(q *quantize.Quantizer, rank, h int) Transform {
	tolerance := q.HueBand / 2
	return Transform{
		Name:    fmt.Sprintf("HueRange-%02d-%d", rank, h),
		Comment: fmt.Sprintf("Purity map of hues within %d degrees of %d; all other pixels flattened.", tolerance, h),
		Apply: func(c *hue.Color) {
			if hueDistance(c.Hue(), h) >= tolerance {
				c.SetLum(int(math.Round(float64(c.Lum())*0.3)) + 35)
				c.SetSat(0)
				return
			}
			c.SetLum(100 - int(math.Round(50*c.Purity())))
			c.SetSat(100)
		},
	}
}

// hueDistance is the shorter way around the color wheel between a and b.
func hueDistance(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	d %= 360
	if d > 180 {
		d = 360 - d
	}
	return d
}
