package settings

import (
	"github.com/reusee/bytetape/cmds"
	"github.com/reusee/bytetape/configs"
	"github.com/reusee/bytetape/vars"
)

type CheckParallelism int

var _ configs.Configurable = CheckParallelism(0)

func (CheckParallelism) ConfigExpr() string {
	return "check_parallelism"
}

var checkParallelismFlag = cmds.Var[int]("-parallel", "number of sources checked at once")

func (Module) CheckParallelism(
	loader configs.Loader,
) CheckParallelism {
	n := vars.FirstNonZero(
		CheckParallelism(*checkParallelismFlag),
		configs.Lookup[CheckParallelism](loader),
		4,
	)
	return max(n, 1)
}
