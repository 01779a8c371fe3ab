package main

import (
	"runtime/debug"

	"github.com/marcus/cn/cmd"
)

// Version is injected by release builds via -ldflags "-X main.Version=..."
var Version = "dev"

// buildVersion resolves what "cn --version" reports: an injected release
// version wins, then the module version stamped by `go install`, then the
// VCS revision baked into the binary.
func buildVersion() string {
	if Version != "" && Version != "dev" {
		return Version
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	if rev := settings["vcs.revision"]; rev != "" {
		if len(rev) > 8 {
			rev = rev[:8]
		}
		v := "dev-" + rev
		if settings["vcs.modified"] == "true" {
			v += "+dirty"
		}
		return v
	}

	return Version
}

func main() {
	cmd.SetVersion(buildVersion())
	cmd.Execute()
}
