// Package transform defines the named per-pixel transforms. Each one mutates
// a hue.Color in place and produces one output image.
package transform

import (
	"fmt"
	"math"

	"github.com/erinpentecost/paintref/internal/hue"
	"github.com/erinpentecost/paintref/internal/quantize"
	"github.com/samber/lo"
)

type Transform struct {
	Name    string
	Comment string
	Apply   func(c *hue.Color)
}

// Catalog is an ordered set of transforms.
type Catalog []Transform

// maskColor replaces pixels outside a grisaille band.
var maskColor = [3]uint8{175, 215, 175}

// NewCatalog builds the fixed transform catalog. The swapper is shared by
// every transform that remaps hues, so all of them agree within a run.
func NewCatalog(q *quantize.Quantizer, swapper *hue.Swapper) Catalog {
	cat := Catalog{
		// Single-dimension views.
		{
			Name:    "FA-1-Only-Values",
			Comment: "A black and white image, made by setting saturation to zero.",
			Apply:   func(c *hue.Color) { c.SetSat(0) },
		},
		{
			Name: "FA-2-Only-Hues",
			Comment: "Luminosity 50 and saturation 100 give the pure hues with no black or white, " +
				"as if mixed from ideal pigments.",
			Apply: func(c *hue.Color) {
				c.SetLum(50)
				c.SetSat(100)
			},
		},
		{
			Name: "FA-3-Only-Saturation",
			Comment: "Lighter areas are where the hue is purest. Darker areas have more black or white mixed in, " +
				"so pure whites and pure darks both come out black.",
			Apply: func(c *hue.Color) {
				c.SetLum(int(math.Round(100 - c.Purity()*50)))
				c.SetSat(100)
			},
		},

		// Images to paint from.
		{
			Name:    "PF-PaintFrom-0-Blocking",
			Comment: "Blocking starting point for an alla prima painting.",
			Apply:   q.Simplify,
		},
		{
			Name:    "PF-PaintFrom-1-Grisaille",
			Comment: "Blocking starting point for a grisaille.",
			Apply: func(c *hue.Color) {
				c.SetSat(0)
				c.SetLum(q.Simplify100(c.Lum()))
				c.SetHue(q.Simplify360(c.Hue()))
			},
		},
	}

	for band := q.LumSatBand / 2; band < 100; band += q.LumSatBand {
		cat = append(cat, Transform{
			Name:    fmt.Sprintf("PF-PaintFrom-1-Grisaille-Band-%02d", band),
			Comment: fmt.Sprintf("Masks every pixel whose value band is not %d.", band),
			Apply: func(c *hue.Color) {
				if q.Simplify100(c.Lum()) != band {
					c.SetRGB(maskColor[0], maskColor[1], maskColor[2])
				}
			},
		})
	}

	return append(cat,
		// Swapped hues show how much of an image is carried by its values.
		Transform{
			Name:    "XFUN-1-HueRandom",
			Comment: "Shows how important values are by randomizing hues.",
			Apply:   func(c *hue.Color) { c.SetHue(swapper.Swap(c.Hue())) },
		},
		Transform{
			Name:    "XFUN-2-HueComplementary",
			Comment: "Shows how important values are by swapping every hue with its complement.",
			Apply:   func(c *hue.Color) { c.SetHue(Complement(c.Hue())) },
		},
		Transform{
			Name:    "XFUN-3-Vivid-Blocked",
			Comment: "A more vivid blocking starting point.",
			Apply: func(c *hue.Color) {
				c.SetSat(int(math.Round(float64(q.Simplify100(c.Sat()))*0.6 + 40)))
				c.SetLum(int(math.Round(float64(q.Simplify100(c.Lum()))*0.6 + 20)))
			},
		},
	)
}

// Complement returns the hue opposite h on the color wheel.
func Complement(h int) int {
	h += 180
	if h >= 360 {
		h -= 360
	}
	return h
}

func (c Catalog) Names() []string {
	return lo.Map(c, func(t Transform, _ int) string { return t.Name })
}

// Lookup finds a transform by name.
func (c Catalog) Lookup(name string) (Transform, bool) {
	return lo.Find(c, func(t Transform) bool { return t.Name == name })
}

// Only keeps the named transforms, in catalog order. An empty list keeps
// everything. Unknown names are an error.
func (c Catalog) Only(names []string) (Catalog, error) {
	if len(names) == 0 {
		return c, nil
	}
	if unknown := lo.Without(names, c.Names()...); len(unknown) > 0 {
		return nil, fmt.Errorf("unknown transforms %q", unknown)
	}
	return lo.Filter(c, func(t Transform, _ int) bool {
		return lo.Contains(names, t.Name)
	}), nil
}
