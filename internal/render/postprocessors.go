package render

import (
	"fmt"
	"image"

	"github.com/erinpentecost/paintref/internal/hue"
	"github.com/samber/lo"
	"golang.org/x/image/draw"
)

// PostProcessor edits a finished output buffer in place or returns a
// replacement.
type PostProcessor interface {
	Process(src *image.RGBA) (*image.RGBA, error)
}

// swatchRect is the fixed 101x101 square, top-left at (50,50).
var swatchRect = image.Rect(50, 50, 151, 151)

// SwatchProcessor paints a solid square of the pure form of Hue so a
// hue-indexed output shows which hue it isolates.
type SwatchProcessor struct {
	Hue int
}

func (p *SwatchProcessor) Process(src *image.RGBA) (*image.RGBA, error) {
	r := swatchRect.Intersect(src.Bounds())
	if r.Empty() {
		return src, nil
	}
	c := hue.FromHSL(p.Hue, 100, 50).RGBA()
	draw.Draw(src, r, image.NewUniform(c), image.Point{}, draw.Src)
	return src, nil
}

// postProcessors lists what runs on o after the pixel pass. Only
// hue-indexed outputs get anything: a swatch of their hue.
func postProcessors(o *OutputImage) []PostProcessor {
	if o.Hue == nil {
		return nil
	}
	return []PostProcessor{&SwatchProcessor{Hue: *o.Hue}}
}

// PostProcess runs each output's post-processors in order. Outputs
// without a hue are left alone.
func (s *ImageSet) PostProcess() error {
	fmt.Fprintf(s.out, ">> Image post-processing is now starting\n")
	hued := lo.Filter(s.Images, func(o *OutputImage, _ int) bool { return o.Hue != nil })
	for _, o := range hued {
		fmt.Fprintf(s.out, "Post-processing %q\n", o.FileSpec)
		for _, p := range postProcessors(o) {
			img, err := p.Process(o.Image)
			if err != nil {
				return fmt.Errorf("post-process %q: %w", o.FileSpec, err)
			}
			o.Image = img
		}
	}
	return nil
}

// Downscale shrinks src so that neither side exceeds maxDimension, keeping
// the aspect ratio. Smaller images and maxDimension <= 0 pass through.
func Downscale(src *image.NRGBA, maxDimension int) *image.NRGBA {
	b := src.Bounds()
	longest := max(b.Dx(), b.Dy())
	if maxDimension <= 0 || longest <= maxDimension {
		return src
	}
	w := max(1, b.Dx()*maxDimension/longest)
	h := max(1, b.Dy()*maxDimension/longest)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
