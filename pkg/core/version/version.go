// ============================================================================
// boundstr - Bounded String Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version information of the boundstr tools
// Author:      msto63
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version of the toolkit. Commit and Date are set at build time:
//
//	go build -ldflags "-X github.com/msto63/boundstr/pkg/core/version.Commit=$(git rev-parse --short HEAD)"
var (
	Version = "1.0.0"
	Commit  = ""
	Date    = ""
)

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Date      string `json:"date,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the version information, filling the commit from the module
// build info when it was not set by the linker
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if info.Commit == "" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				switch s.Key {
				case "vcs.revision":
					info.Commit = s.Value
				case "vcs.time":
					if info.Date == "" {
						info.Date = s.Value
					}
				}
			}
		}
	}
	return info
}

// String returns a one line summary such as "boundstr 1.0.0 (abc123) go1.24 linux/amd64"
func (i Info) String() string {
	s := "boundstr " + i.Version
	if i.Commit != "" {
		commit := i.Commit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		s += " (" + commit + ")"
	}
	return fmt.Sprintf("%s %s %s", s, i.GoVersion, i.Platform)
}
