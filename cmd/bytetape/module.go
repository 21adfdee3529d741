package main

import (
	"github.com/reusee/bytetape/checks"
	"github.com/reusee/bytetape/consoles"
	"github.com/reusee/bytetape/debugs"
	"github.com/reusee/bytetape/histories"
	"github.com/reusee/bytetape/logs"
	"github.com/reusee/bytetape/settings"
	"github.com/reusee/bytetape/sources"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Settings  settings.Module
	Sources   sources.Module
	Consoles  consoles.Module
	Debugs    debugs.Module
	Checks    checks.Module
	Histories histories.Module
	Logs      logs.Module
}
