package consoles

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/bytetape/logs"
)

const (
	replPrompt  = "bf> "
	inputPrompt = "input> "
)

// Eval runs one entered line. Program input is read through the same line editor, one line at a time.
type Eval func(ctx context.Context, line string, input io.ByteReader, output io.Writer) error

// REPL reads lines until EOF, passing each non-empty one to eval.
// Errors from eval are printed and do not end the loop.
type REPL func(ctx context.Context, eval Eval) error

func (Module) REPL(
	logger logs.Logger,
) REPL {
	return func(ctx context.Context, eval Eval) error {
		var historyFile string
		if home, err := os.UserHomeDir(); err == nil {
			historyFile = filepath.Join(home, ".bytetape_history")
		}
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          replPrompt,
			HistoryFile:     historyFile,
			InterruptPrompt: "^C",
			EOFPrompt:       "exit",
		})
		if err != nil {
			return err
		}
		defer rl.Close()

		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			line, err := rl.Readline()
			if errors.Is(err, readline.ErrInterrupt) {
				if line == "" {
					return nil
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			} else if err != nil {
				return err
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			input := &LineInput{
				Lines:  rl,
				Prompt: inputPrompt,
				Reset:  replPrompt,
			}
			if err := eval(ctx, line, input, rl.Stdout()); err != nil {
				logger.DebugContext(ctx, "eval", "error", err)
				io.WriteString(rl.Stderr(), err.Error()+"\n")
			}
		}
	}
}

type lineReader interface {
	Readline() (string, error)
	SetPrompt(string)
}

// LineInput serves bytes from lines read on demand, each followed by a newline.
type LineInput struct {
	Lines   lineReader
	Prompt  string
	Reset   string
	pending []byte
}

var _ io.ByteReader = new(LineInput)

func (l *LineInput) ReadByte() (byte, error) {
	for len(l.pending) == 0 {
		l.Lines.SetPrompt(l.Prompt)
		line, err := l.Lines.Readline()
		l.Lines.SetPrompt(l.Reset)
		if errors.Is(err, readline.ErrInterrupt) {
			return 0, ErrInterrupted
		} else if err != nil {
			return 0, err
		}
		l.pending = append(l.pending, line...)
		l.pending = append(l.pending, '\n')
	}
	b := l.pending[0]
	l.pending = l.pending[1:]
	return b, nil
}
