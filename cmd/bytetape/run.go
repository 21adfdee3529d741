package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/reusee/bytetape/cmds"
	"github.com/reusee/bytetape/consoles"
	"github.com/reusee/bytetape/debugs"
	"github.com/reusee/bytetape/histories"
	"github.com/reusee/bytetape/logs"
	"github.com/reusee/bytetape/reports"
	"github.com/reusee/bytetape/sources"
	"github.com/reusee/bytetape/tapevm"
	"github.com/reusee/dscope"
)

func runPrograms(ctx context.Context, scope dscope.Scope) (code int) {
	if len(*inlinePrograms) == 0 && len(*programNames) == 0 {
		cmds.GlobalExecutor.FprintUsage(os.Stderr)
		return reports.ExitOther
	}

	scope.Call(func(
		load sources.Load,
		input consoles.InputDevice,
		newSpan logs.NewSpan,
		tap debugs.Tap,
		openHistory histories.Open,
		logger logs.Logger,
	) {
		var history *histories.Store
		if *recordHistory {
			store, err := openHistory(ctx)
			if err != nil {
				logger.WarnContext(ctx, "history disabled", "error", err)
			} else {
				history = store
				defer history.Close()
			}
		}

		output := bufio.NewWriter(os.Stdout)
		defer output.Flush()

		var srcs []*sources.Source
		for _, program := range *inlinePrograms {
			srcs = append(srcs, sources.Inline(program))
		}
		for _, name := range *programNames {
			src, err := load(ctx, name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				code = reports.ExitOther
				return
			}
			srcs = append(srcs, src)
		}

		for _, src := range srcs {
			ctx, _ := newSpan(ctx, src.Name)

			tape := tapevm.NewTape()
			if *loadPath != "" {
				if err := loadSnapshot(*loadPath, tape); err != nil {
					fmt.Fprintf(os.Stderr, "load snapshot: %v\n", err)
					code = reports.ExitOther
					return
				}
			}

			vm := tapevm.NewVM(src.Program, tape)
			vm.Output = output
			vm.Input = flushingInput{
				input:  input,
				output: output,
			}

			started := time.Now()
			var err error
			for step, e := range vm.Run {
				if e != nil {
					err = e
					break
				}
				if *traceSteps {
					logger.DebugContext(ctx, "step",
						"cursor", step.Cursor,
						"op", step.Op.String(),
						"address", step.Address,
						"cell", step.Cell,
					)
				}
			}
			elapsed := time.Since(started)
			output.Flush()

			if err != nil {
				logger.DebugContext(ctx, "run failed", "error", logs.WrapSpan(ctx, err))
				fmt.Fprintf(os.Stderr, "%s: %s\n", src.Name, reports.Describe(err))
			}

			if *dumpPath != "" {
				if err := dumpSnapshot(*dumpPath, vm); err != nil {
					logger.WarnContext(ctx, "dump snapshot", "error", err)
				}
			}

			if history != nil {
				run := &histories.Run{
					Source:   src.Name,
					Hash:     histories.Hash(src.Program),
					ExitCode: reports.ExitCode(err),
					Started:  started,
					Duration: elapsed,
				}
				if err != nil {
					run.Error = reports.Describe(err)
				}
				if err := history.Record(ctx, run); err != nil {
					logger.WarnContext(ctx, "record history", "error", err)
				}
			}

			if *tapAfterRun {
				tap(ctx, src.Name, map[string]any{
					"cells":   tape,
					"pointer": vm.Pointer.Address,
					"program": src.Program,
					"error":   err,
					"cell":    debugs.CellFunc(tape),
				})
			}

			if err != nil {
				code = reports.ExitCode(err)
				return
			}
		}
	})

	return
}
