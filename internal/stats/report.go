package stats

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Report is the on-disk summary of a Stats pass.
type Report struct {
	Image      string        `yaml:"image"`
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	AverageHue float64       `yaml:"averageHue"`
	Hues       []ReportEntry `yaml:"hues"`
}

type ReportEntry struct {
	Rank   int     `yaml:"rank"`
	Hue    int     `yaml:"hue"`
	Pixels int     `yaml:"pixels"`
	Share  float64 `yaml:"share"` // percent of all pixels
	Color  string  `yaml:"color"`
}

func (s *Stats) Report(imagePath string) *Report {
	total := s.Width * s.Height
	out := &Report{
		Image:      imagePath,
		Width:      s.Width,
		Height:     s.Height,
		AverageHue: s.AverageHue,
	}
	for i, h := range s.Ranked() {
		share := 0.0
		if total > 0 {
			share = float64(h.Pixels) / float64(total) * 100
		}
		out.Hues = append(out.Hues, ReportEntry{
			Rank:   i,
			Hue:    h.Hue,
			Pixels: h.Pixels,
			Share:  share,
			Color:  fmt.Sprintf("#%02X%02X%02X", h.R, h.G, h.B),
		})
	}
	return out
}

func (r *Report) Write(path string) error {
	raw, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal hue report: %w", err)
	}
	if err := os.WriteFile(path, raw, 0666); err != nil {
		return fmt.Errorf("write hue report %q: %w", path, err)
	}
	return nil
}
