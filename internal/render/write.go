package render

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

// WriteFiles saves every output. A failed file does not stop the others;
// every failure comes back joined, each as an *OutputError.
func (s *ImageSet) WriteFiles(ctx context.Context) error {
	var (
		mux  sync.Mutex
		errs []error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.threads)
	for _, o := range s.Images {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			err := imaging.Save(o.Image, o.FileSpec)

			mux.Lock()
			defer mux.Unlock()
			fmt.Fprintf(s.out, " -> Writing file %q\n", o.FileSpec)
			if err != nil {
				errs = append(errs, &OutputError{Path: o.FileSpec, Err: err})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
