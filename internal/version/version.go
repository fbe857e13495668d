package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Set with -ldflags "-X github.com/devRabbiz/waveboxapp/internal/version.version=..."
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if version == "dev" && info.Main.Version != "(devel)" && info.Main.Version != "" {
		version = info.Main.Version
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if commit != "unknown" || setting.Value == "" {
				continue
			}
			commit = shortCommit(setting.Value)
		case "vcs.time":
			if date != "unknown" {
				continue
			}
			if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
				date = t.Format("02/01/2006")
			}
		}
	}
}

func shortCommit(revision string) string {
	if len(revision) > 7 {
		return revision[:7]
	}
	return revision
}

func Version() string {
	return version
}

func Commit() string {
	return commit
}

func Date() string {
	return date
}

// String is the one line form printed by --version
func String() string {
	return fmt.Sprintf("%s (%s, %s)", version, commit, date)
}
