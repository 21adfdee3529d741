package settings

import (
	"fmt"

	"github.com/reusee/bytetape/cmds"
	"github.com/reusee/bytetape/configs"
	"github.com/reusee/bytetape/vars"
)

type InputMode string

const (
	// one keystroke per read, no echo, when stdin is a terminal
	InputModeRaw InputMode = "raw"
	// stdin as is, line buffered by the terminal
	InputModeLine InputMode = "line"
)

var _ configs.Configurable = InputMode("")

func (InputMode) ConfigExpr() string {
	return "input_mode"
}

var inputModeFlag = new(InputMode)

func ParseInputMode(str string) (InputMode, error) {
	switch mode := InputMode(str); mode {
	case InputModeRaw, InputModeLine:
		return mode, nil
	}
	return "", fmt.Errorf("bad input mode %q, want raw or line", str)
}

func init() {
	cmds.Define("-input", cmds.Func(func(str string) error {
		mode, err := ParseInputMode(str)
		if err != nil {
			return err
		}
		*inputModeFlag = mode
		return nil
	}).Desc("input mode: raw or line"))
	cmds.Define("-line", cmds.Func(func() {
		*inputModeFlag = InputModeLine
	}).Desc("read program input line buffered"))
}

func (Module) InputMode(
	loader configs.Loader,
) InputMode {
	return vars.FirstNonZero(
		*inputModeFlag,
		configs.Lookup[InputMode](loader),
		InputModeRaw,
	)
}
