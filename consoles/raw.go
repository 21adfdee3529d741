package consoles

import (
	"errors"
	"io"
	"os"

	"github.com/reusee/bytetape/settings"
	"github.com/reusee/bytetape/tapevm"
	"golang.org/x/term"
)

var ErrInterrupted = errors.New("interrupted")

const (
	keyInterrupt = 0x03
	keyEOF       = 0x04
)

// Console reads one keystroke at a time. The terminal is switched to raw mode only for the
// duration of each read, so program output between reads is rendered normally.
type Console struct {
	File *os.File
	buf  [1]byte
}

var _ io.ByteReader = new(Console)

func (c *Console) ReadByte() (byte, error) {
	fd := int(c.File.Fd())
	isTerminal := term.IsTerminal(fd)
	if isTerminal {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return 0, err
		}
		defer term.Restore(fd, state)
	}

	if _, err := io.ReadFull(c.File, c.buf[:]); err != nil {
		return 0, err
	}

	if isTerminal {
		// raw mode delivers these as bytes instead of signals
		switch c.buf[0] {
		case keyInterrupt:
			return 0, ErrInterrupted
		case keyEOF:
			return 0, io.EOF
		}
	}
	return c.buf[0], nil
}

type InputDevice io.ByteReader

func (Module) InputDevice(
	mode settings.InputMode,
) InputDevice {
	if mode == settings.InputModeLine {
		return &tapevm.ReaderDevice{
			R: os.Stdin,
		}
	}
	return &Console{
		File: os.Stdin,
	}
}
