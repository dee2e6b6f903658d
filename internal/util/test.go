package util

import (
	"flag"
	"os"
	"strings"
)

// RunningInTest reports whether the current binary was built by "go test".
func RunningInTest() bool {
	if flag.Lookup("test.v") != nil {
		return true
	}

	return strings.HasSuffix(os.Args[0], ".test")
}
