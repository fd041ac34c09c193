// Package stats counts how often each quantized hue appears in an image so
// the dominant hues can be given their own outputs.
package stats

import (
	"image"
	"slices"

	"github.com/erinpentecost/paintref/internal/hue"
	"github.com/erinpentecost/paintref/internal/quantize"
)

// HueDetails counts the pixels in one bucket. R, G and B are the quantized
// color of the first pixel that landed in the bucket.
type HueDetails struct {
	Hue     int
	Pixels  int
	R, G, B uint8
}

// DetailKey identifies a (hue, luminosity, saturation) bucket.
type DetailKey struct {
	Hue, Lum, Sat int
}

type Stats struct {
	Width  int
	Height int

	// HueOnly is keyed by quantized hue.
	HueOnly map[int]*HueDetails
	// HueDetail is keyed by quantized hue, luminosity and saturation.
	HueDetail map[DetailKey]*HueDetails
	// AverageHue is the circular mean of the unquantized hues.
	AverageHue float64

	order  []*HueDetails
	ranked []*HueDetails
}

type Collector struct {
	q *quantize.Quantizer
}

func NewCollector(q *quantize.Quantizer) *Collector {
	return &Collector{q: q}
}

// Collect walks every pixel of img once.
func (c *Collector) Collect(img image.Image) *Stats {
	b := img.Bounds()
	s := &Stats{
		Width:     b.Dx(),
		Height:    b.Dy(),
		HueOnly:   map[int]*HueDetails{},
		HueDetail: map[DetailKey]*HueDetails{},
	}
	var mean hue.Mean
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := hue.FromColor(img.At(x, y))
			mean.Add(px.Hue())
			s.add(c.quantize(px))
		}
	}
	s.AverageHue = mean.Degrees()
	return s
}

func (c *Collector) quantize(px *hue.Color) *hue.Color {
	px.SetHue(c.q.Simplify360(px.Hue()))
	px.SetLum(c.q.Simplify100(px.Lum()))
	px.SetSat(c.q.Simplify100(px.Sat()))
	return px
}

func (s *Stats) add(px *hue.Color) {
	r, g, b := px.RGB()

	h, ok := s.HueOnly[px.Hue()]
	if !ok {
		h = &HueDetails{Hue: px.Hue(), R: r, G: g, B: b}
		s.HueOnly[px.Hue()] = h
		s.order = append(s.order, h)
	}
	h.Pixels++

	key := DetailKey{Hue: px.Hue(), Lum: px.Lum(), Sat: px.Sat()}
	d, ok := s.HueDetail[key]
	if !ok {
		d = &HueDetails{Hue: px.Hue(), R: r, G: g, B: b}
		s.HueDetail[key] = d
	}
	d.Pixels++
	s.ranked = nil
}

// Ranked returns the hue buckets by descending pixel count. Buckets with
// equal counts stay in the order their hue was first seen.
func (s *Stats) Ranked() []*HueDetails {
	if s.ranked == nil {
		s.ranked = slices.Clone(s.order)
		slices.SortStableFunc(s.ranked, func(a, b *HueDetails) int {
			return b.Pixels - a.Pixels
		})
	}
	return s.ranked
}

// Top returns at most k of the most common hue buckets.
func (s *Stats) Top(k int) []*HueDetails {
	ranked := s.Ranked()
	return ranked[:min(max(k, 0), len(ranked))]
}
