package tapevm

import (
	"io"
	"os"
	"unicode/utf8"
)

type VM struct {
	Program string
	Tape    *Tape
	Pointer DataPointer
	Cursor  int
	Input   io.ByteReader
	Output  io.Writer

	outBuf [utf8.UTFMax]byte
}

func NewVM(program string, tape *Tape) *VM {
	return &VM{
		Program: program,
		Tape:    tape,
		Input: &ReaderDevice{
			R: os.Stdin,
		},
		Output: os.Stdout,
	}
}

type Step struct {
	Cursor  int
	Op      Op
	Address int
	Cell    byte
}

func (v *VM) cell() byte {
	return v.Tape[v.Pointer.Address]
}

// emit writes the cell value taken as a code point
func (v *VM) emit(value byte) error {
	buf := utf8.AppendRune(v.outBuf[:0], rune(value))
	if _, err := v.Output.Write(buf); err != nil {
		return IOError{
			Err: err,
		}
	}
	return nil
}
