package version

import (
	"os"
	"path/filepath"
	"strings"
)

// ApplicationName is the human-readable name of the application.
var ApplicationName = "ShellConf"

// CommandName is the name of the executable command.
// It is initialized dynamically from the executable filename.
var CommandName = "shellconf"

// Version is the current version of the application.
// This is intended to be overwritten at build time using:
// -ldflags "-X shellconf/internal/version.Version=vX.Y.Z"
var Version = "v0.0.0-dev"

// Commit is the git commit hash of the build.
var Commit = "none"

// BuildDate is the date the binary was built.
var BuildDate = "unknown"

func init() {
	baseName := filepath.Base(os.Args[0])
	name := strings.TrimSuffix(baseName, filepath.Ext(baseName))
	if name == "" || strings.EqualFold(name, "main") {
		return
	}
	CommandName = name
}
