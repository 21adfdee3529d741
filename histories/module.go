package histories

import (
	"github.com/reusee/bytetape/logs"
	"github.com/reusee/bytetape/settings"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Settings settings.Module
	Logs     logs.Module
}
