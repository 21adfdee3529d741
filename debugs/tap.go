package debugs

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/reusee/bytetape/logs"
	"github.com/reusee/bytetape/tapevm"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Tap opens an interactive starlark session over globals, blocking until stdin reaches EOF.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(fileOptions, thread, toStringDict(globals))
	}
}

// Eval evaluates a single expression against globals.
func Eval(expr string, globals map[string]any) (starlark.Value, error) {
	thread := &starlark.Thread{
		Name: "eval",
	}
	return starlark.EvalOptions(fileOptions, thread, "<tap>", expr, toStringDict(globals))
}

func toStringDict(globals map[string]any) starlark.StringDict {
	dict := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		dict[name] = toStarlarkValue(value)
	}
	return dict
}

// CellFunc returns the cell(i) binding for tap sessions over tape.
func CellFunc(tape *tapevm.Tape) func(i int) (int, error) {
	return func(i int) (int, error) {
		if i < 0 || i >= tapevm.CellCount {
			return 0, fmt.Errorf("cell index %d out of range [0, %d)", i, tapevm.CellCount)
		}
		return int(tape[i]), nil
	}
}
