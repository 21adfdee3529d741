package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/bytetape/consoles"
	"github.com/reusee/bytetape/logs"
	"github.com/reusee/bytetape/reports"
	"github.com/reusee/bytetape/settings"
	"github.com/reusee/bytetape/tapevm"
	"github.com/reusee/dscope"
)

func startREPL(ctx context.Context, scope dscope.Scope) (code int) {
	tape := tapevm.NewTape()
	if *loadPath != "" {
		if err := loadSnapshot(*loadPath, tape); err != nil {
			fmt.Fprintf(os.Stderr, "load snapshot: %v\n", err)
			return reports.ExitOther
		}
	}

	scope.Call(func(
		repl consoles.REPL,
		tapCells settings.TapCells,
		newSpan logs.NewSpan,
		logger logs.Logger,
	) {
		var vm *tapevm.VM
		err := repl(ctx, func(ctx context.Context, line string, input io.ByteReader, output io.Writer) error {
			ctx, _ = newSpan(ctx, "repl")
			logger.DebugContext(ctx, "eval", "line", line)
			vm = tapevm.NewVM(line, tape)
			vm.Input = input
			vm.Output = output
			err := vm.Execute()
			fmt.Fprintln(output, reports.FormatCells(tape, 0, int(tapCells), vm.Pointer.Address))
			if err != nil {
				return errors.New(reports.Describe(err))
			}
			return nil
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "repl: %v\n", err)
			code = reports.ExitOther
			return
		}

		if *dumpPath != "" && vm != nil {
			if err := dumpSnapshot(*dumpPath, vm); err != nil {
				fmt.Fprintf(os.Stderr, "dump snapshot: %v\n", err)
				code = reports.ExitOther
			}
		}
	})

	return
}
