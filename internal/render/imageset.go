// Package render runs every registered transform over every pixel of a
// source image and writes one PNG per transform.
package render

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/dblezek/tga"
	"github.com/disintegration/imaging"
	"github.com/erinpentecost/paintref/internal/hue"
	"github.com/erinpentecost/paintref/internal/transform"
	"golang.org/x/sync/errgroup"

	_ "golang.org/x/image/webp"
)

type Options struct {
	// Threads caps the goroutines used by Process and WriteFiles.
	// Zero means one per CPU.
	Threads int
	// MaxDimension downscales the source so neither side exceeds it.
	// Zero keeps the source size.
	MaxDimension int
	// Out receives progress messages. Nil means os.Stdout.
	Out io.Writer
}

// OutputImage is one destination buffer and the transform that fills it.
type OutputImage struct {
	Image     *image.RGBA
	FileSpec  string
	Transform transform.Transform
	// Hue is set on outputs that isolate a single hue; they get a swatch.
	Hue *int
}

type ImageSet struct {
	InputPath string
	Width     int
	Height    int
	Images    []*OutputImage

	source  *image.NRGBA
	threads int
	out     io.Writer
}

// Load decodes the image at path. Any failure is an *InputError.
func Load(path string, opts Options) (*ImageSet, error) {
	img, err := decode(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	return New(path, img, opts), nil
}

// decode picks the TGA reader by extension, since TGA has no magic number
// for image.Decode to sniff. Everything else goes through imaging.
func decode(path string) (image.Image, error) {
	if !strings.EqualFold(filepath.Ext(path), ".tga") {
		return imaging.Open(path, imaging.AutoOrientation(true))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := tga.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode tga: %w", err)
	}
	return img, nil
}

// New wraps an already decoded image. The source is copied, so later
// changes to img do not affect the run.
func New(path string, img image.Image, opts Options) *ImageSet {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	src := imaging.Clone(img)
	if opts.MaxDimension > 0 {
		src = Downscale(src, opts.MaxDimension)
	}

	b := src.Bounds()
	return &ImageSet{
		InputPath: path,
		Width:     b.Dx(),
		Height:    b.Dy(),
		source:    src,
		threads:   threads,
		out:       out,
	}
}

// Source returns the image the transforms read from.
func (s *ImageSet) Source() image.Image {
	return s.source
}

func (s *ImageSet) PixelCount() int {
	return s.Width * s.Height
}

// InitOutput registers an output named <input>.<suffix>.png.
// A non-nil h marks it as hue-indexed.
func (s *ImageSet) InitOutput(suffix string, t transform.Transform, h *int) *OutputImage {
	o := &OutputImage{
		Image:     image.NewRGBA(image.Rect(0, 0, s.Width, s.Height)),
		FileSpec:  fmt.Sprintf("%s.%s.png", s.InputPath, suffix),
		Transform: t,
		Hue:       h,
	}
	s.Images = append(s.Images, o)
	return o
}

// Process fills every output buffer. Rows are independent, so they are
// spread across goroutines; each writes only its own row of each output.
func (s *ImageSet) Process(ctx context.Context) error {
	fmt.Fprintf(s.out, ">> Image processing is now starting\n")
	if len(s.Images) == 0 || s.PixelCount() == 0 {
		return nil
	}

	p := &progress{out: s.out, total: s.Height}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.threads)
	for y := range s.Height {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s.transformRow(y)
			p.step()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("process pixels: %w", err)
	}
	return nil
}

// transformRow gives every output a fresh Color per pixel, so no transform
// sees another's changes.
func (s *ImageSet) transformRow(y int) {
	row := s.source.Pix[y*s.source.Stride:]
	for x := range s.Width {
		r, g, b := row[x*4], row[x*4+1], row[x*4+2]
		for _, o := range s.Images {
			c := hue.NewColor(r, g, b)
			o.Transform.Apply(c)
			i := o.Image.PixOffset(x, y)
			pix := o.Image.Pix[i : i+4 : i+4]
			pix[0], pix[1], pix[2] = c.RGB()
			pix[3] = 0xff
		}
	}
}

// progress prints a line each time another 5% of rows is done.
type progress struct {
	mux      sync.Mutex
	out      io.Writer
	total    int
	done     int
	lastStep int
}

func (p *progress) step() {
	p.mux.Lock()
	defer p.mux.Unlock()
	p.done++
	if step := p.done * 20 / p.total; step > p.lastStep {
		p.lastStep = step
		fmt.Fprintf(p.out, "  -> Percent Complete: %d\n", step*5)
	}
}
