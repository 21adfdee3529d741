package settings

import (
	"github.com/reusee/bytetape/configs"
	"github.com/reusee/bytetape/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
