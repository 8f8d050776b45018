package synth

import (
	"context"
	"reflect"
	"runtime"

	"golang.org/x/sync/errgroup"

	"object-synth/generator"
)

// CreateMany returns n new values of type T. Run i is seeded with
// seed+i, so the batch is reproducible from Result.Seed. Runs share the
// schema graph and execute concurrently, or one at a time when a
// registered generator is stateful.
func CreateMany[T any](ctx context.Context, s *Synth, n int) ([]T, Result, error) {
	rt := reflect.TypeFor[T]()
	seed := s.seed()

	if _, err := s.Schema(rt); err != nil {
		return nil, Result{Seed: seed}, err
	}

	values := make([]T, n)
	results := make([]Result, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism())

	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			v, res, err := s.create(rt, seed+uint64(i))
			results[i] = res
			if err != nil {
				return err
			}

			values[i], _ = v.Interface().(T)

			return nil
		})
	}

	out := Result{Seed: seed}
	err := g.Wait()
	for _, res := range results {
		out.Diagnostics.Merge(res.Diagnostics)
	}

	if err != nil {
		return nil, out, err
	}

	return values, out, nil
}

func (s *Synth) parallelism() int {
	for _, g := range s.selectors.Generators() {
		if _, ok := generator.AsResetter(g); ok {
			return 1
		}
	}

	return runtime.GOMAXPROCS(0)
}
