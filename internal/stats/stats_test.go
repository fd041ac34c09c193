package stats

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/erinpentecost/paintref/internal/quantize"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type run struct {
	c color.RGBA
	n int
}

// stripes fills a one-row image with runs of colors, in order.
func stripes(runs ...run) *image.RGBA {
	total := 0
	for _, r := range runs {
		total += r.n
	}
	img := image.NewRGBA(image.Rect(0, 0, total, 1))
	x := 0
	for _, r := range runs {
		for range r.n {
			img.SetRGBA(x, 0, r.c)
			x++
		}
	}
	return img
}

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

func TestRankedByCount(t *testing.T) {
	// green is seen first but red is more common
	img := stripes(run{green, 50}, run{red, 100})
	s := NewCollector(quantize.New()).Collect(img)

	ranked := s.Ranked()
	require.Len(t, ranked, 2)
	require.Equal(t, 0, ranked[0].Hue)
	require.Equal(t, 100, ranked[0].Pixels)
	require.Equal(t, 121, ranked[1].Hue)
	require.Equal(t, 50, ranked[1].Pixels)
}

func TestRankedTiesKeepFirstSeen(t *testing.T) {
	img := stripes(run{blue, 10}, run{green, 10}, run{red, 10})
	s := NewCollector(quantize.New()).Collect(img)

	got := []int{}
	for _, h := range s.Ranked() {
		got = append(got, h.Hue)
	}
	if diff := cmp.Diff([]int{238, 121, 0}, got); diff != "" {
		t.Errorf("ranked hues mismatch (-want +got):\n%s", diff)
	}
}

func TestHueDetailBuckets(t *testing.T) {
	img := stripes(
		run{color.RGBA{255, 0, 0, 255}, 3},
		run{color.RGBA{128, 0, 0, 255}, 2},
	)
	s := NewCollector(quantize.New()).Collect(img)

	require.Len(t, s.HueOnly, 1)
	require.Equal(t, 5, s.HueOnly[0].Pixels)

	require.Len(t, s.HueDetail, 2)
	require.Equal(t, 3, s.HueDetail[DetailKey{Hue: 0, Lum: 55, Sat: 95}].Pixels)
	require.Equal(t, 2, s.HueDetail[DetailKey{Hue: 0, Lum: 25, Sat: 95}].Pixels)
}

func TestRepresentativeColorIsQuantized(t *testing.T) {
	img := stripes(run{red, 1})
	s := NewCollector(quantize.New()).Collect(img)
	h := s.HueOnly[0]
	// hue 0, luminosity 55, saturation 95
	require.NotEqual(t, [3]uint8{255, 0, 0}, [3]uint8{h.R, h.G, h.B})
	require.Greater(t, h.R, h.G)
	require.Equal(t, h.G, h.B)
}

func TestTop(t *testing.T) {
	img := stripes(run{blue, 3}, run{green, 2}, run{red, 1})
	s := NewCollector(quantize.New()).Collect(img)
	require.Len(t, s.Top(2), 2)
	require.Len(t, s.Top(20), 3)
	require.Empty(t, s.Top(0))
}

func TestReport(t *testing.T) {
	img := stripes(run{red, 3}, run{blue, 1})
	s := NewCollector(quantize.New()).Collect(img)
	r := s.Report("in.png")

	require.Equal(t, 4, r.Width)
	require.Equal(t, 1, r.Height)
	require.Len(t, r.Hues, 2)
	require.Equal(t, 0, r.Hues[0].Rank)
	require.InDelta(t, 75.0, r.Hues[0].Share, 1e-9)
	require.InDelta(t, 25.0, r.Hues[1].Share, 1e-9)

	path := filepath.Join(t.TempDir(), "in.png.hues.yaml")
	require.NoError(t, r.Write(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var back Report
	require.NoError(t, yaml.Unmarshal(raw, &back))
	require.Equal(t, r.Hues[1].Hue, back.Hues[1].Hue)
	require.Equal(t, "in.png", back.Image)
}
