package main

import (
	"errors"
	"flag"
	"io/fs"

	"github.com/fwojciec/tablefmt"
	"github.com/fwojciec/tablefmt/toml"
)

// options holds the flag values that can override the config file.
type options struct {
	write   bool
	check   bool
	preview bool
	schema  bool
}

// resolveConfig loads the config file and applies explicitly set flags on
// top. A missing default config file is tolerated; a missing explicit one
// is an error.
func resolveConfig(path string, set map[string]bool, opts options) (tablefmt.Config, error) {
	cfg := tablefmt.DefaultConfig()
	explicit := path != ""
	if !explicit {
		path = toml.DefaultPath
	}
	loaded, err := toml.LoadConfig(path)
	switch {
	case err == nil:
		cfg = loaded
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// No default config file; use built-in defaults.
	default:
		return tablefmt.Config{}, err
	}

	if set["w"] {
		cfg.Write = opts.write
	}
	if set["check"] {
		cfg.Check = opts.check
	}
	if set["preview"] {
		cfg.Preview = opts.preview
	}
	if set["schema"] {
		cfg.Schema = opts.schema
	}
	return cfg, nil
}

// setFlags returns the names of the flags given on the command line.
func setFlags(flags *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}
