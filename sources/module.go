package sources

import (
	"io"
	"os"

	"github.com/reusee/bytetape/logs"
	"github.com/reusee/bytetape/nets"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Nets nets.Module
	Logs logs.Module
}

// Stdin is where the "-" source is read from.
type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}
