package config

import (
	"fmt"

	"github/chapool/go-transfer/internal/util"
)

const unsetModuleName = "build.local/misses/ldflags"

// The following vars are automatically injected via -ldflags.
// See Makefile target "make go-build" and make var $(LDFLAGS).
// No need to change them here.
// https://www.digitalocean.com/community/tutorials/using-ldflags-to-set-version-information-for-go-applications
var (
	ModuleName = unsetModuleName                            // e.g. "github/chapool/go-transfer"
	Commit     = "< 40 chars git commit hash via ldflags >" // e.g. "59cb7684dd0b0f38d68cd7db657cb614feba8f7e"
	BuildDate  = "1970-01-01T00:00:00+00:00"                // e.g. "1970-01-01T00:00:00+00:00"
)

// GetFormattedBuildArgs returns string representation of buildsargs set via ldflags "<ModuleName> @ <Commit> (<BuildDate>)"
// Local builds without ldflags fall back to the module path of the go.mod.
func GetFormattedBuildArgs() string {
	module := ModuleName
	if module == unsetModuleName {
		if m := util.GetModulePath(util.GetProjectRootDir()); m != "" {
			module = m
		}
	}

	return fmt.Sprintf("%v @ %v (%v)", module, Commit, BuildDate)
}
