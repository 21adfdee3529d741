package checks

import (
	"context"
	"iter"

	"github.com/reusee/bytetape/logs"
	"github.com/reusee/bytetape/settings"
	"github.com/reusee/bytetape/sources"
	"github.com/reusee/bytetape/syncs"
	"github.com/reusee/bytetape/tapevm"
)

type Result struct {
	Name  string
	Pairs int
	Err   error
}

// Check resolves the brackets of every named source without running them.
// Sources are loaded and checked concurrently; results are yielded in argument order.
type Check func(ctx context.Context, names []string) iter.Seq[*Result]

func (Module) Check(
	load sources.Load,
	parallelism settings.CheckParallelism,
	logger logs.Logger,
) Check {
	return func(ctx context.Context, names []string) iter.Seq[*Result] {
		return func(yield func(*Result) bool) {
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			sem := syncs.NewSemaphore(int(parallelism))
			results := make([]chan *Result, len(names))
			for i, name := range names {
				ch := make(chan *Result, 1)
				results[i] = ch
				go func() {
					if err := sem.AcquireContext(ctx); err != nil {
						ch <- &Result{Name: name, Err: err}
						return
					}
					defer sem.Release()
					ch <- checkOne(ctx, load, name)
				}()
			}

			for _, ch := range results {
				result := <-ch
				logger.DebugContext(ctx, "checked",
					"name", result.Name,
					"error", result.Err,
				)
				if !yield(result) {
					return
				}
			}
		}
	}
}

func checkOne(ctx context.Context, load sources.Load, name string) *Result {
	result := &Result{
		Name: name,
	}
	src, err := load(ctx, name)
	if err != nil {
		result.Err = err
		return result
	}
	pairs, err := tapevm.ResolveBrackets(src.Program)
	if err != nil {
		result.Err = err
		return result
	}
	result.Pairs = len(pairs)
	return result
}
