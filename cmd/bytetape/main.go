package main

import (
	"context"
	"os"

	"github.com/reusee/bytetape/cmds"
	"github.com/reusee/bytetape/modes"
	"github.com/reusee/dscope"
)

var (
	programNames   = cmds.Collect[string]("-file", "program file, http(s) url, or - for stdin")
	inlinePrograms = cmds.Collect[string]("-e", "program text")
	traceSteps     = cmds.Switch("-trace", "log every executed instruction at debug level")
	tapAfterRun    = cmds.Switch("-tap", "inspect the tape in a starlark session after each run")
	recordHistory  = cmds.Switch("-history", "record runs to the history database")
	dumpPath       = cmds.Var[string]("-dump", "write a tape snapshot after each run")
	loadPath       = cmds.Var[string]("-load", "seed the tape from a snapshot before each run")
)

type action func(ctx context.Context, scope dscope.Scope) int

var selected action = runPrograms

var historyLimit = 20

func init() {
	cmds.Positional(func(arg string) error {
		*programNames = append(*programNames, arg)
		return nil
	})
	cmds.Define("check", cmds.Func(func() {
		selected = checkPrograms
	}).Desc("check loop brackets without running"))
	cmds.Define("repl", cmds.Func(func() {
		selected = startREPL
	}).Desc("run lines interactively against one tape"))
	cmds.Define("history", cmds.Func(func(n *int) {
		selected = showHistory
		if *n > 0 {
			historyLimit = *n
		}
	}).Desc("show recent recorded runs"))
}

func main() {
	cmds.Execute(os.Args[1:])
	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	os.Exit(selected(context.Background(), scope))
}
