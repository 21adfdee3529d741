package reports

import (
	"fmt"
	"strings"

	"github.com/reusee/bytetape/tapevm"
)

// FormatCells renders n cells starting at from, marking the one at pointer.
// The window is clamped to the tape.
func FormatCells(tape *tapevm.Tape, from, n, pointer int) string {
	from = max(from, 0)
	to := min(from+n, tapevm.CellCount)
	var b strings.Builder
	for i := from; i < to; i++ {
		if i > from {
			b.WriteByte(' ')
		}
		if i == pointer {
			fmt.Fprintf(&b, "[%d]", tape[i])
		} else {
			fmt.Fprintf(&b, "%d", tape[i])
		}
	}
	if to < tapevm.CellCount {
		b.WriteString(" ...")
	}
	return b.String()
}
