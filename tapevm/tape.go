package tapevm

const CellCount = 30_000

// Tape is the fixed cell memory. It is never resized; callers own it and may reuse it across executions.
type Tape [CellCount]byte

func NewTape() *Tape {
	return new(Tape)
}
