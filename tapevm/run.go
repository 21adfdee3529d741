package tapevm

// Run executes the program from the start with a fresh data pointer.
// A step is yielded after each executed instruction; a non-nil error ends the run.
func (v *VM) Run(yield func(*Step, error) bool) {
	v.Pointer = DataPointer{}
	v.Cursor = 0

	table, err := NewJumpTable(v.Program)
	if err != nil {
		yield(nil, err)
		return
	}

	step := new(Step)
	for v.Cursor < len(v.Program) {
		pos := v.Cursor
		op := Op(v.Program[pos])
		if !op.IsInstruction() {
			v.Cursor++
			continue
		}

		switch op {

		case OpRight:
			if err := v.Pointer.Right(); err != nil {
				yield(nil, err)
				return
			}

		case OpLeft:
			if err := v.Pointer.Left(); err != nil {
				yield(nil, err)
				return
			}

		case OpIncrement:
			if v.cell() == 255 {
				yield(nil, CellOverflow{
					Position: v.Pointer.Address,
				})
				return
			}
			v.Tape[v.Pointer.Address]++

		case OpDecrement:
			if v.cell() == 0 {
				yield(nil, CellUnderflow{
					Position: v.Pointer.Address,
				})
				return
			}
			v.Tape[v.Pointer.Address]--

		case OpOutput:
			if err := v.emit(v.cell()); err != nil {
				yield(nil, err)
				return
			}

		case OpInput:
			b, err := v.Input.ReadByte()
			if err != nil {
				yield(nil, IOError{
					Err: err,
				})
				return
			}
			v.Tape[v.Pointer.Address] = b

		case OpLoopOpen:
			if v.cell() == 0 {
				v.Cursor = table.CloseOf[pos]
			}

		case OpLoopClose:
			if v.cell() != 0 {
				v.Cursor = table.OpenOf[pos]
			}

		}

		v.Cursor++
		*step = Step{
			Cursor:  pos,
			Op:      op,
			Address: v.Pointer.Address,
			Cell:    v.cell(),
		}
		if !yield(step, nil) {
			return
		}
	}

	if err := v.emit('\n'); err != nil {
		yield(nil, err)
		return
	}
}
