package debugs

import (
	"testing"

	"github.com/reusee/bytetape/modes"
	"github.com/reusee/bytetape/tapevm"
	"github.com/reusee/dscope"
	"go.starlark.net/starlark"
)

func TestTap(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		tap Tap,
	) {
		// stdin is not interactive under go test
		tap(t.Context(), "test", map[string]any{
			"pointer": 42,
		})
	})
}

func TestEval(t *testing.T) {
	tape := tapevm.NewTape()
	if err := tapevm.NewVM("+++>++", tape).Execute(); err != nil {
		t.Fatal(err)
	}
	globals := map[string]any{
		"cells":   tape,
		"pointer": 1,
		"program": "+++>++",
		"error":   nil,
		"cell":    CellFunc(tape),
	}

	for expr, expected := range map[string]starlark.Value{
		"cells[0]":                     starlark.MakeInt(3),
		"cells[pointer]":               starlark.MakeInt(2),
		"len(cells)":                   starlark.MakeInt(tapevm.CellCount),
		"cell(1) + cell(0)":            starlark.MakeInt(5),
		"error == None":                starlark.True,
		"program.count('+')":           starlark.MakeInt(5),
		"[cells[i] for i in range(3)]": starlark.NewList([]starlark.Value{starlark.MakeInt(3), starlark.MakeInt(2), starlark.MakeInt(0)}),
	} {
		got, err := Eval(expr, globals)
		if err != nil {
			t.Fatalf("%s: %v", expr, err)
		}
		equal, err := starlark.Equal(got, expected)
		if err != nil {
			t.Fatal(err)
		}
		if !equal {
			t.Fatalf("%s: got %v", expr, got)
		}
	}

	if _, err := Eval("cells[", globals); err == nil {
		t.Fatal("should fail")
	}
}

func TestCellOutOfRange(t *testing.T) {
	tape := tapevm.NewTape()
	tape[tapevm.CellCount-1] = 9
	globals := map[string]any{
		"cell": CellFunc(tape),
	}
	for _, expr := range []string{
		"cell(30000)",
		"cell(-1)",
	} {
		if _, err := Eval(expr, globals); err == nil {
			t.Fatalf("%s: should fail", expr)
		}
	}
	got, err := Eval("cell(29999)", globals)
	if err != nil {
		t.Fatal(err)
	}
	if equal, _ := starlark.Equal(got, starlark.MakeInt(9)); !equal {
		t.Fatalf("got %v", got)
	}
}
