package tapevm

// Execute runs program against tape, reading stdin and writing stdout.
// Stdin is read as is, so a terminal delivers input line by line; set VM.Input for raw console input.
func Execute(program string, tape *Tape) error {
	return NewVM(program, tape).Execute()
}

func (v *VM) Execute() error {
	for _, err := range v.Run {
		if err != nil {
			return err
		}
	}
	return nil
}
