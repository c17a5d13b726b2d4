package main

import (
	_ "embed"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version when installed with go install
// (e.g. "v0.1.0"), and "devel-0.1.0+abc1234" for source builds.
func Version() string {
	info, _ := debug.ReadBuildInfo()
	return formatVersion(strings.TrimSpace(embeddedVersion), info)
}

func formatVersion(base string, info *debug.BuildInfo) string {
	if info == nil {
		return base
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return "devel-" + base + "+" + s.Value[:7]
		}
	}
	return "devel-" + base
}
