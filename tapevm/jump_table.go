package tapevm

import "github.com/reusee/bytetape/vars"

type JumpTable struct {
	// loop-open position to loop-close position
	CloseOf map[int]int
	// loop-close position to loop-open position
	OpenOf map[int]int
}

func NewJumpTable(program string) (*JumpTable, error) {
	closeOf, err := ResolveBrackets(program)
	if err != nil {
		return nil, err
	}
	return &JumpTable{
		CloseOf: closeOf,
		OpenOf:  vars.Invert(closeOf),
	}, nil
}

// ResolveBrackets maps every loop-open position to its matching loop-close position.
// An unclosed marker is reported at the bottom of the pending stack, the outermost one.
func ResolveBrackets(program string) (map[int]int, error) {
	var stack []int
	ret := make(map[int]int)
	for i := 0; i < len(program); i++ {
		switch Op(program[i]) {
		case OpLoopOpen:
			stack = append(stack, i)
		case OpLoopClose:
			if len(stack) == 0 {
				return nil, StrayCloseMarker{
					Position: i,
				}
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			ret[open] = i
		}
	}
	if len(stack) > 0 {
		return nil, UnclosedOpenMarker{
			Position: stack[0],
		}
	}
	return ret, nil
}
