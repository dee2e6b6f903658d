package util

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/mod/modfile"
)

var (
	projectRootDir     string
	projectRootDirOnce sync.Once
)

// GetProjectRootDir returns the directory holding go.mod. PROJECT_ROOT_DIR
// overrides the lookup, e.g. inside containers where the sources are absent.
func GetProjectRootDir() string {
	projectRootDirOnce.Do(func() {
		if val, ok := os.LookupEnv("PROJECT_ROOT_DIR"); ok {
			projectRootDir = val
			return
		}

		_, file, _, ok := runtime.Caller(0)
		if !ok {
			wd, err := os.Getwd()
			if err != nil {
				log.Panic().Err(err).Msg("Failed to determine project root dir")
			}

			projectRootDir = wd
			return
		}

		projectRootDir = filepath.Join(filepath.Dir(file), "..", "..")
	})

	return projectRootDir
}

// GetModulePath reads the module path from the go.mod in dir. An empty
// string is returned if there is no readable go.mod.
func GetModulePath(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return ""
	}

	return modfile.ModulePath(data)
}
