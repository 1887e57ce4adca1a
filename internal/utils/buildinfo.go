package utils

import (
	"runtime/debug"
)

const (
	unknownVersion       = "unknown"
	develVersion         = "(devel)"
	vcsRevisionSetting   = "vcs.revision"
	shortRevisionLength  = 12
	revisionVersionLabel = "devel-"
)

// Version can be set at link time with -ldflags "-X github.com/temirov/richtree/internal/utils.Version=v1.2.3".
var Version string

// GetApplicationVersion returns the linked version, the module version from build info,
// or a development label derived from the VCS revision.
func GetApplicationVersion() string {
	if Version != "" {
		return Version
	}
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if !buildInfoAvailable {
		return unknownVersion
	}
	if buildInfo.Main.Version != "" && buildInfo.Main.Version != develVersion {
		return buildInfo.Main.Version
	}
	for _, setting := range buildInfo.Settings {
		if setting.Key != vcsRevisionSetting || setting.Value == "" {
			continue
		}
		revision := setting.Value
		if len(revision) > shortRevisionLength {
			revision = revision[:shortRevisionLength]
		}
		return revisionVersionLabel + revision
	}
	return unknownVersion
}
