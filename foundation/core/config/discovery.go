// File: discovery.go
// Title: Configuration File Discovery
// Description: Finds the configuration file in the usual places when none is
//              given on the command line.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Search paths, names and extensions
// - 2026-10-16 v0.2.0: boundstr defaults and XDG config directory

package config

import (
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/boundstr/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
}

// DefaultDiscoveryOptions returns the search order used by the CLI
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "boundstr"))
	}
	paths = append(paths, "/etc/boundstr")

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"boundstr", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var files []string
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				files = append(files, filepath.Join(dir, name+ext))
			}
		}
	}
	return files
}

// FindConfigFile returns the first candidate that exists as a regular file
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", mdwerror.New("no configuration file found").
		WithCode(mdwerror.CodeMissingConfig).
		WithOperation("config.FindConfigFile").
		WithDetail("searched", candidates)
}

// Discover loads the first configuration file found, or defaults plus
// environment overrides when there is none
func Discover(options DiscoveryOptions) (*Settings, string, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		path = ""
	}
	s, err := Load(path)
	return s, path, err
}
