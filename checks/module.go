package checks

import (
	"github.com/reusee/bytetape/logs"
	"github.com/reusee/bytetape/settings"
	"github.com/reusee/bytetape/sources"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Settings settings.Module
	Sources  sources.Module
	Logs     logs.Module
}
