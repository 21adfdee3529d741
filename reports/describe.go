package reports

import (
	"errors"
	"fmt"
	"io"

	"github.com/reusee/bytetape/tapevm"
)

// Describe renders err for people running programs.
func Describe(err error) string {
	if err == nil {
		return "ok"
	}

	var tapeErr tapevm.Error
	if !errors.As(err, &tapeErr) {
		return err.Error()
	}

	switch e := tapeErr.(type) {
	case tapevm.CellOverflow:
		return fmt.Sprintf("cell %d overflowed past 255", e.Position)
	case tapevm.CellUnderflow:
		return fmt.Sprintf("cell %d underflowed below 0", e.Position)
	case tapevm.PointerOutOfLeftBound:
		return "data pointer moved left of cell 0"
	case tapevm.PointerOutOfRightBound:
		return fmt.Sprintf("data pointer moved right of cell %d", tapevm.CellCount-1)
	case tapevm.UnclosedOpenMarker:
		return fmt.Sprintf("'[' at offset %d is never closed", e.Position)
	case tapevm.StrayCloseMarker:
		return fmt.Sprintf("']' at offset %d has no matching '['", e.Position)
	case tapevm.IOError:
		if errors.Is(e.Err, io.EOF) {
			return "input exhausted"
		}
		return fmt.Sprintf("i/o failure: %v", e.Err)
	}
	return err.Error()
}

const (
	ExitOK = iota
	ExitRuntime
	ExitBracket
	ExitIO
	ExitOther
)

func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var tapeErr tapevm.Error
	if !errors.As(err, &tapeErr) {
		return ExitOther
	}
	switch tapeErr.(type) {
	case tapevm.UnclosedOpenMarker, tapevm.StrayCloseMarker:
		return ExitBracket
	case tapevm.IOError:
		return ExitIO
	}
	return ExitRuntime
}
