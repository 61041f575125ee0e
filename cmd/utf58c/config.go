package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// options is the resolved set of settings for one run.
type options struct {
	In       string
	Out      string
	Decode   bool
	Hex      bool
	Listing  bool
	Validate bool
	Info     bool
	LogLevel zerolog.Level
}

func defaultOptions() options {
	return options{
		In:       "-",
		Out:      "-",
		LogLevel: zerolog.InfoLevel,
	}
}

type fileConfig struct {
	Mode     string `toml:"mode"`
	Hex      bool   `toml:"hex"`
	Listing  bool   `toml:"listing"`
	LogLevel string `toml:"log_level"`
}

// loadConfigFile overlays the settings defined in the TOML file at path
// onto opts.
func loadConfigFile(path string, opts options) (options, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return options{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return options{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("mode") {
		switch strings.ToLower(strings.TrimSpace(raw.Mode)) {
		case "encode":
			opts.Decode = false
		case "decode":
			opts.Decode = true
		default:
			return options{}, fmt.Errorf("parse mode: %q is not encode or decode", raw.Mode)
		}
	}

	if meta.IsDefined("hex") {
		opts.Hex = raw.Hex
	}

	if meta.IsDefined("listing") {
		opts.Listing = raw.Listing
	}

	if meta.IsDefined("log_level") {
		level, err := zerolog.ParseLevel(strings.TrimSpace(raw.LogLevel))
		if err != nil {
			return options{}, fmt.Errorf("parse log_level: %w", err)
		}
		opts.LogLevel = level
	}

	return opts, nil
}
