package settings

import (
	"os"
	"path/filepath"

	"github.com/reusee/bytetape/cmds"
	"github.com/reusee/bytetape/configs"
	"github.com/reusee/bytetape/vars"
)

type HistoryPath string

var _ configs.Configurable = HistoryPath("")

func (HistoryPath) ConfigExpr() string {
	return "history_path"
}

var historyPathFlag = cmds.Var[HistoryPath]("-history-db", "history database path")

func (Module) HistoryPath(
	loader configs.Loader,
) HistoryPath {
	var fallback HistoryPath
	if dir, err := os.UserConfigDir(); err == nil {
		fallback = HistoryPath(filepath.Join(dir, "bytetape", "history.db"))
	}
	return vars.FirstNonZero(
		*historyPathFlag,
		configs.Lookup[HistoryPath](loader),
		fallback,
	)
}
