package hue

import "math"

// Purity maps a (luminosity, saturation) pair to how close it is to the
// pure hue at luminosity 50, saturation 100. It returns 1 at that point and
// 0 anywhere on the edge of the region: saturation 0, luminosity 0 or 100.
//
// The high-luminosity half is reflected onto the low half and saturation is
// halved, giving a 50x50 square with the pure hue at the origin. Purity is
// one minus the ratio of the point's distance from the origin to the length
// of the ray from the origin through the point out to the square's edge.
func Purity(l, s int) float64 {
	l = clampPercent(l)
	s = clampPercent(s)

	// x: distance of luminosity from 50, on [0,50]
	x := float64(50 - l)
	if l > 50 {
		x = float64(l - 50)
	}
	// y: distance of saturation from 100, rescaled to [0,50]
	y := float64(100-s) / 2

	if x == 0 {
		return (50 - y) / 50
	}
	if y == 0 && x == y {
		return (50 - x) / 50
	}

	// The square is symmetric about x=y, so only solve below the diagonal.
	if y > x {
		x, y = y, x
	}
	radiusXY := math.Sqrt(x*x + y*y)
	// Where the ray through (x,y) meets the x=50 edge.
	yPrime := y * 50 / x
	radiusMax := math.Sqrt(50*50 + yPrime*yPrime)
	return 1 - radiusXY/radiusMax
}

// Purity of the color's current luminosity and saturation.
func (c *Color) Purity() float64 {
	return Purity(c.l, c.s)
}
