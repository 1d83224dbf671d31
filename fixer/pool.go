package fixer

import (
	"golang.org/x/sync/errgroup"

	"github.com/erraggy/identcase/convention"
	"github.com/erraggy/identcase/converter"
)

// minChunk is the smallest batch handed to one goroutine.
const minChunk = 64

// convertAll converts texts to c, using up to workers goroutines.
// out[i] always corresponds to texts[i].
func convertAll(texts []string, c convention.Convention, workers int) ([]string, error) {
	out := make([]string, len(texts))
	if workers < 2 || len(texts) <= minChunk {
		for i, s := range texts {
			out[i] = converter.Convert(s, c)
		}
		return out, nil
	}

	chunk := (len(texts) + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < len(texts); lo += chunk {
		hi := min(lo+chunk, len(texts))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				out[i] = converter.Convert(texts[i], c)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
