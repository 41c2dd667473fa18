// File: config.go
// Title: Settings Loading
// Description: Implements the Settings document, loading from TOML or YAML
//              files, defaults and key based access.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: TOML/YAML loading with defaults
// - 2026-10-16 v0.2.0: Typed Settings with key based Set/Get

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/boundstr/foundation/core/error"
	"github.com/msto63/boundstr/foundation/utils/numx"
	"github.com/msto63/boundstr/foundation/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota

	// FormatTOML represents TOML format (default)
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// EnvPrefix is the prefix of environment overrides, as in BOUNDSTR_BUFFER_CAPACITY
const EnvPrefix = "BOUNDSTR"

// Settings is the configuration document of the boundstr tools
type Settings struct {
	Buffer BufferSettings `toml:"buffer" yaml:"buffer"`
	Split  SplitSettings  `toml:"split" yaml:"split"`
	Trim   TrimSettings   `toml:"trim" yaml:"trim"`
	Parse  ParseSettings  `toml:"parse" yaml:"parse"`
	Log    LogSettings    `toml:"log" yaml:"log"`
}

// BufferSettings sizes the destination buffers the CLI allocates
type BufferSettings struct {
	Capacity int `toml:"capacity" yaml:"capacity"`
}

// SplitSettings configures string list splitting
type SplitSettings struct {
	Delimiter  string `toml:"delimiter" yaml:"delimiter"`
	MaxEntries int    `toml:"max_entries" yaml:"max_entries"`
	MaxBytes   int    `toml:"max_bytes" yaml:"max_bytes"`
}

// TrimSettings configures trimming
type TrimSettings struct {
	Charset string `toml:"charset" yaml:"charset"`
}

// ParseSettings configures integer parsing
type ParseSettings struct {
	Base    int   `toml:"base" yaml:"base"`
	Default int64 `toml:"default" yaml:"default"`
}

// LogSettings configures the log handle
type LogSettings struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	// Output is "stderr", "stdout", "syslog" or a file path
	Output string `toml:"output" yaml:"output"`
	Ident  string `toml:"ident" yaml:"ident"`
	Caller bool   `toml:"caller" yaml:"caller"`
}

// Defaults returns the settings used when nothing else is configured
func Defaults() Settings {
	return Settings{
		Buffer: BufferSettings{Capacity: 256},
		Split:  SplitSettings{Delimiter: ","},
		Trim:   TrimSettings{Charset: stringx.DefaultCharset},
		Parse:  ParseSettings{Base: 10},
		Log: LogSettings{
			Level:  "info",
			Format: "text",
			Output: "stderr",
			Ident:  "boundstr",
		},
	}
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format // File format (default: auto-detect)
	EnvPrefix string // Environment variable prefix (default: none)

	// LookupEnv reads the environment; nil means os.LookupEnv
	LookupEnv func(string) (string, bool)
}

// Load reads path on top of the defaults, applies BOUNDSTR_* overrides and
// validates the result. An empty path yields defaults plus overrides.
func Load(path string) (*Settings, error) {
	return LoadWithOptions(path, LoadOptions{Format: FormatAuto, EnvPrefix: EnvPrefix})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(path string, options LoadOptions) (*Settings, error) {
	s := Defaults()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			code := mdwerror.CodeConfigError
			if os.IsNotExist(err) {
				code = mdwerror.CodeNotFound
			}
			return nil, mdwerror.Wrap(err, "failed to read config file").
				WithCode(code).
				WithOperation("config.Load").
				WithDetail("filePath", path)
		}

		format := options.Format
		if format == FormatAuto {
			format = detectFormat(path)
		}
		if err := decode(content, format, &s); err != nil {
			return nil, mdwerror.Wrap(err, "failed to parse config file").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Load").
				WithDetail("filePath", path).
				WithDetail("format", format.String())
		}
	}

	if options.EnvPrefix != "" {
		lookup := options.LookupEnv
		if lookup == nil {
			lookup = os.LookupEnv
		}
		if err := s.applyEnv(options.EnvPrefix, lookup); err != nil {
			return nil, err
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// detectFormat detects configuration format from file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// decode fills s from content and rejects keys Settings does not know
func decode(content []byte, format Format, s *Settings) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		md, err := toml.Decode(string(content), s)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
		return nil
	}
}

// field binds a dotted key to a Settings member
type field struct {
	get func(*Settings) string
	set func(*Settings, string) error
}

func intField(p func(*Settings) *int) field {
	return field{
		get: func(s *Settings) string { return strconv.Itoa(*p(s)) },
		set: func(s *Settings, v string) error {
			n, end, err := numx.Scan(v, 0, strconv.IntSize)
			if err != nil || end != len(v) {
				return fmt.Errorf("%q is not an integer", v)
			}
			*p(s) = int(n)
			return nil
		},
	}
}

func stringField(p func(*Settings) *string) field {
	return field{
		get: func(s *Settings) string { return *p(s) },
		set: func(s *Settings, v string) error { *p(s) = v; return nil },
	}
}

var fields = map[string]field{
	"buffer.capacity":   intField(func(s *Settings) *int { return &s.Buffer.Capacity }),
	"split.delimiter":   stringField(func(s *Settings) *string { return &s.Split.Delimiter }),
	"split.max_entries": intField(func(s *Settings) *int { return &s.Split.MaxEntries }),
	"split.max_bytes":   intField(func(s *Settings) *int { return &s.Split.MaxBytes }),
	"trim.charset":      stringField(func(s *Settings) *string { return &s.Trim.Charset }),
	"parse.base":        intField(func(s *Settings) *int { return &s.Parse.Base }),
	"parse.default": {
		get: func(s *Settings) string { return strconv.FormatInt(s.Parse.Default, 10) },
		set: func(s *Settings, v string) error {
			n, end, err := numx.Scan(v, 0, 64)
			if err != nil || end != len(v) {
				return fmt.Errorf("%q is not an integer", v)
			}
			s.Parse.Default = n
			return nil
		},
	},
	"log.level":  stringField(func(s *Settings) *string { return &s.Log.Level }),
	"log.format": stringField(func(s *Settings) *string { return &s.Log.Format }),
	"log.output": stringField(func(s *Settings) *string { return &s.Log.Output }),
	"log.ident":  stringField(func(s *Settings) *string { return &s.Log.Ident }),
	"log.caller": {
		get: func(s *Settings) string { return strconv.FormatBool(s.Log.Caller) },
		set: func(s *Settings, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%q is not a boolean", v)
			}
			s.Log.Caller = b
			return nil
		},
	},
}

// Keys returns every settable key in sorted order
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a dotted key as text
func (s *Settings) Get(key string) (string, error) {
	f, ok := fields[key]
	if !ok {
		return "", unknownKey(key)
	}
	return f.get(s), nil
}

// Set assigns a dotted key from text. The result is not validated.
func (s *Settings) Set(key, value string) error {
	f, ok := fields[key]
	if !ok {
		return unknownKey(key)
	}
	if err := f.set(s, value); err != nil {
		return mdwerror.Wrap(err, "invalid value for "+key).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Set").
			WithDetail("key", key)
	}
	return nil
}

// EnvName returns the environment variable that overrides key
func EnvName(prefix, key string) string {
	return prefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func (s *Settings) applyEnv(prefix string, lookup func(string) (string, bool)) error {
	for _, key := range Keys() {
		if v, ok := lookup(EnvName(prefix, key)); ok {
			if err := s.Set(key, v); err != nil {
				return mdwerror.Wrap(err, "invalid environment override").
					WithOperation("config.Load").
					WithDetail("env", EnvName(prefix, key))
			}
		}
	}
	return nil
}

func unknownKey(key string) *mdwerror.Error {
	return mdwerror.New("unknown configuration key: " + key).
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.key").
		WithDetail("key", key)
}
