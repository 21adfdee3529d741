package tapevm

import "fmt"

// Error is implemented only by the error kinds of this package.
type Error interface {
	error
	tapeError()
}

var (
	_ Error = CellOverflow{}
	_ Error = CellUnderflow{}
	_ Error = PointerOutOfLeftBound{}
	_ Error = PointerOutOfRightBound{}
	_ Error = UnclosedOpenMarker{}
	_ Error = StrayCloseMarker{}
	_ Error = IOError{}
)

type CellOverflow struct {
	Position int
}

func (CellOverflow) tapeError() {}

func (e CellOverflow) Error() string {
	return fmt.Sprintf("cell overflow at position %d", e.Position)
}

type CellUnderflow struct {
	Position int
}

func (CellUnderflow) tapeError() {}

func (e CellUnderflow) Error() string {
	return fmt.Sprintf("cell underflow at position %d", e.Position)
}

type PointerOutOfLeftBound struct{}

func (PointerOutOfLeftBound) tapeError() {}

func (PointerOutOfLeftBound) Error() string {
	return "pointer out of left bound"
}

type PointerOutOfRightBound struct{}

func (PointerOutOfRightBound) tapeError() {}

func (PointerOutOfRightBound) Error() string {
	return "pointer out of right bound"
}

type UnclosedOpenMarker struct {
	Position int
}

func (UnclosedOpenMarker) tapeError() {}

func (e UnclosedOpenMarker) Error() string {
	return fmt.Sprintf("unclosed loop-open marker at position %d", e.Position)
}

type StrayCloseMarker struct {
	Position int
}

func (StrayCloseMarker) tapeError() {}

func (e StrayCloseMarker) Error() string {
	return fmt.Sprintf("stray loop-close marker at position %d", e.Position)
}

// IOError reports a failed read from the input device or write to the output sink.
type IOError struct {
	Err error
}

func (IOError) tapeError() {}

func (e IOError) Error() string {
	if e.Err == nil {
		return "io error"
	}
	return "io error: " + e.Err.Error()
}

func (e IOError) Unwrap() error {
	return e.Err
}
