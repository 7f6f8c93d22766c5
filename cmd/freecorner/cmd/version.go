package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"golang.org/x/mod/semver"
)

// Version can be set at build time with -ldflags "-X ...cmd.Version=v1.2.3".
// When empty, the module version from the build info is used.
var Version = ""

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  `Print the freecorner version and the Go version it was built with.`,
		Usage: "freecorner version",
		Run:   runVersion,
	})
}

func runVersion(args []string) error {
	fmt.Fprintf(stdout, "freecorner %s (%s)\n", currentVersion(), runtime.Version())
	return nil
}

func currentVersion() string {
	if Version != "" {
		return displayVersion(Version)
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "devel"
	}
	return displayVersion(info.Main.Version)
}

// displayVersion returns v in canonical semver form, or "devel" for
// anything that is not a release or pseudo-version.
func displayVersion(v string) string {
	if v != "" && v[0] != 'v' {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "devel"
	}
	return semver.Canonical(v)
}
