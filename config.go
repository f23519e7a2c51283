package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	env "github.com/xyproto/env/v2"
)

// FileConfig is the shape of an optional jasm.toml, SPEC_FULL.md §9's
// domain-stack addition on top of spec.md's plain CLI. Every field is
// optional; zero values mean "use the built-in default".
type FileConfig struct {
	BaseAddr      string `toml:"base_addr"`
	DefaultFormat string `toml:"default_format"`
	Verbose       *bool  `toml:"verbose"`
	Color         *bool  `toml:"color"`
}

// loadConfigFile reads and parses a TOML config file. A missing or
// unreadable file is an error — callers only invoke it when -c/--config
// was given explicitly.
func loadConfigFile(path string) (*FileConfig, error) {
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}
	return &cfg, nil
}

// applyFileConfig folds a parsed jasm.toml into Options, overriding
// whatever DefaultOptions set.
func applyFileConfig(opts Options, cfg *FileConfig) (Options, error) {
	if cfg.BaseAddr != "" {
		addr, err := parseUnsigned(cfg.BaseAddr, 0, "")
		if err != nil {
			return opts, fmt.Errorf("config base_addr: %w", err)
		}
		opts.BaseAddr = addr
	}
	if cfg.DefaultFormat != "" {
		format, ok := ParseOutputFormat(cfg.DefaultFormat)
		if !ok {
			return opts, fmt.Errorf("config default_format: unrecognised value %q", cfg.DefaultFormat)
		}
		opts.Format = format
	}
	if cfg.Verbose != nil {
		opts.Verbose = *cfg.Verbose
	}
	return opts, nil
}

// applyEnvOverrides layers JASM_* environment variables on top of Options,
// mirroring the FLAPC_<NAME> convention the teacher repo uses for its own
// env overrides. Environment wins over the config file, CLI flags win over
// both — resolved in main.go.
func applyEnvOverrides(opts Options) (Options, error) {
	if v := env.Str("JASM_BASE_ADDR"); v != "" {
		addr, err := parseUnsigned(v, 0, "")
		if err != nil {
			return opts, fmt.Errorf("JASM_BASE_ADDR: %w", err)
		}
		opts.BaseAddr = addr
	}
	if v := env.Str("JASM_FORMAT"); v != "" {
		format, ok := ParseOutputFormat(v)
		if !ok {
			return opts, fmt.Errorf("JASM_FORMAT: unrecognised value %q", v)
		}
		opts.Format = format
	}
	if v := env.Str("JASM_VERBOSE"); v != "" {
		opts.Verbose = env.Bool("JASM_VERBOSE")
	}
	return opts, nil
}

// wantsColor resolves whether diagnostic output should be colourised,
// honouring (in priority order) the config file, then NO_COLOR, then
// defaulting to on.
func wantsColor(cfg *FileConfig) bool {
	if cfg != nil && cfg.Color != nil {
		return *cfg.Color
	}
	return os.Getenv("NO_COLOR") == ""
}
