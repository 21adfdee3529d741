package main

import (
	"context"
	"fmt"

	"github.com/reusee/bytetape/checks"
	"github.com/reusee/bytetape/reports"
	"github.com/reusee/bytetape/tapevm"
	"github.com/reusee/dscope"
)

func checkPrograms(ctx context.Context, scope dscope.Scope) (code int) {
	report := func(name string, pairs int, err error) {
		if err != nil {
			fmt.Printf("%s: %s\n", name, reports.Describe(err))
			code = max(code, reports.ExitCode(err))
			return
		}
		fmt.Printf("%s: ok, %d loops\n", name, pairs)
	}

	for _, program := range *inlinePrograms {
		pairs, err := tapevm.ResolveBrackets(program)
		report("-e", len(pairs), err)
	}

	scope.Call(func(
		check checks.Check,
	) {
		for result := range check(ctx, *programNames) {
			report(result.Name, result.Pairs, result.Err)
		}
	})

	return
}
