package settings

import (
	"github.com/reusee/bytetape/configs"
	"github.com/reusee/bytetape/vars"
)

// TapCells is how many leading cells the REPLs show.
type TapCells int

var _ configs.Configurable = TapCells(0)

func (TapCells) ConfigExpr() string {
	return "tap_cells"
}

func (Module) TapCells(
	loader configs.Loader,
) TapCells {
	return vars.FirstNonZero(
		configs.Lookup[TapCells](loader),
		16,
	)
}
