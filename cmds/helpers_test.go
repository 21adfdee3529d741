package cmds

import (
	"fmt"
	"testing"
)

func TestVar(t *testing.T) {
	a := Var[int]("TestVarInt", "")
	b := Var[string]("TestVarString", "")
	GlobalExecutor.MustExecute([]string{
		"TestVarInt", "42",
		"TestVarString", "bar",
	})
	if *a != 42 {
		t.Fatalf("got %v", *a)
	}
	if *b != "bar" {
		t.Fatalf("got %v", *b)
	}
	GlobalExecutor.MustExecute([]string{
		"TestVarInt.",
	})
	if *a != 0 {
		t.Fatalf("got %v", *a)
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch", "")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if !*foo {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *foo {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	list := Collect[string]("TestCollect", "program text")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "+",
		"TestCollect", "-",
	})
	if str := fmt.Sprintf("%v", *list); str != "[+ -]" {
		t.Fatalf("got %s", str)
	}
	if desc := GlobalExecutor.commands["TestCollect"].Description; desc != "program text" {
		t.Fatalf("got %s", desc)
	}
}

func TestTypedVar(t *testing.T) {
	type Mode string
	v := Var[Mode]("TestTypedVar", "")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "line",
	})
	if *v != "line" {
		t.Fatalf("got %v", *v)
	}
}
