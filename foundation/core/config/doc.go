// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads the boundstr settings from TOML or YAML,
//              applies environment overrides, validates and watches them.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: TOML/YAML support
// - 2026-10-16 v0.2.0: Typed Settings, fsnotify watching

/*
Package config provides the configuration of the boundstr tools.

# Loading

Load starts from Defaults, decodes the file on top (TOML unless the
extension is .yaml or .yml), applies BOUNDSTR_* environment overrides and
validates the result. Unknown keys in the file are rejected.

	settings, err := config.Load("boundstr.toml")
	if err != nil {
		return err
	}
	buf := make([]byte, settings.Buffer.Capacity)

A TOML file looks like this:

	[buffer]
	capacity = 64

	[split]
	delimiter = ","

	[log]
	level = "notice"
	format = "console"

# Environment

Every key can be overridden through the environment. The variable name is
the prefix, an underscore, and the key in upper case with dots replaced:

	BOUNDSTR_BUFFER_CAPACITY=1024
	BOUNDSTR_LOG_OUTPUT=syslog

# Discovery and watching

Discover searches the working directory, the user configuration directory
and /etc/boundstr. Watch reloads a file whenever it changes:

	go config.Watch(ctx, path, func(s *config.Settings, err error) {
		if err != nil {
			logger.LogError(err)
			return
		}
		apply(s)
	})
*/
package config
