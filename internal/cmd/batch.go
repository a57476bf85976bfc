package cmd

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// fileResult records one processed file.
type fileResult struct {
	Input      string
	Output     string
	InputSize  int
	OutputSize int
}

// runBatch applies fn to every path using up to runtime.NumCPU() workers.
// Results keep the order of paths. The first error stops the batch.
func runBatch(paths []string, fn func(path string) (fileResult, error)) ([]fileResult, error) {
	results := make([]fileResult, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, p := range paths {
		g.Go(func() error {
			r, err := fn(p)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
