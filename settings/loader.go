package settings

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bytetape/configs"
	"github.com/reusee/bytetape/logs"
	"github.com/reusee/bytetape/modes"
)

//go:embed schema.cue
var Schema string

var filenames = []string{
	"bytetape.cue",
	".bytetape.cue",
}

// SearchPaths lists existing config files, most specific first.
func SearchPaths() (paths []string) {
	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir, filepath.Join(configDir, "bytetape"))
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}

func (Module) ConfigsLoader(
	mode modes.Mode,
	logger logs.Logger,
) configs.Loader {
	// host config files never leak into tests
	if mode == modes.ModeDevelopment {
		return configs.NewLoader(nil, Schema)
	}

	paths := SearchPaths()
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	loader := configs.NewLoader(paths, Schema)
	if level := configs.First[string](loader, "log_level"); level != "" {
		logs.SetLevel(level)
	}
	return loader
}
