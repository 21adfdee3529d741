package main

import (
	"bufio"
	"io"
)

// flushingInput flushes pending program output before blocking on input.
type flushingInput struct {
	input  io.ByteReader
	output *bufio.Writer
}

func (f flushingInput) ReadByte() (byte, error) {
	if err := f.output.Flush(); err != nil {
		return 0, err
	}
	return f.input.ReadByte()
}
