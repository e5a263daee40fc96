package kernel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RunRowBands splits [0,height) into nbands contiguous row ranges and
// calls fn once per band concurrently, each with its own [start,end)
// row range. Used only by the opt-in parallel entry points: ordinary
// transforms call their row loop directly. Every band operates on a
// disjoint slice of the destination buffer, so no caller-visible data
// race is possible even though fn runs on multiple goroutines.
func RunRowBands(height, nbands int, fn func(start, end int) error) error {
	if nbands <= 1 || height <= 1 {
		return fn(0, height)
	}
	if nbands > height {
		nbands = height
	}
	g, _ := errgroup.WithContext(context.Background())
	bandHeight := (height + nbands - 1) / nbands
	for start := 0; start < height; start += bandHeight {
		end := start + bandHeight
		if end > height {
			end = height
		}
		start, end := start, end
		g.Go(func() error {
			return fn(start, end)
		})
	}
	return g.Wait()
}
