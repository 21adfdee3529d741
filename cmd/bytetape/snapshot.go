package main

import (
	"os"

	"github.com/reusee/bytetape/tapevm"
)

func loadSnapshot(path string, tape *tapevm.Tape) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	snapshot, err := tapevm.ReadSnapshot(f)
	if err != nil {
		return err
	}
	snapshot.Restore(tape)
	return nil
}

func dumpSnapshot(path string, vm *tapevm.VM) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := vm.Snapshot().WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
