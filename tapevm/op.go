package tapevm

type Op byte

const (
	OpRight     Op = '>'
	OpLeft      Op = '<'
	OpIncrement Op = '+'
	OpDecrement Op = '-'
	OpOutput    Op = '.'
	OpInput     Op = ','
	OpLoopOpen  Op = '['
	OpLoopClose Op = ']'
)

func (o Op) IsInstruction() bool {
	switch o {
	case OpRight, OpLeft, OpIncrement, OpDecrement,
		OpOutput, OpInput, OpLoopOpen, OpLoopClose:
		return true
	}
	return false
}

func (o Op) String() string {
	switch o {
	case OpRight:
		return "right"
	case OpLeft:
		return "left"
	case OpIncrement:
		return "increment"
	case OpDecrement:
		return "decrement"
	case OpOutput:
		return "output"
	case OpInput:
		return "input"
	case OpLoopOpen:
		return "loop-open"
	case OpLoopClose:
		return "loop-close"
	}
	return "nop"
}
