// Package toml loads formatter configuration from TOML files.
package toml

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fwojciec/tablefmt"
)

// DefaultPath is the config file read when none is given explicitly.
const DefaultPath = ".tablefmt.toml"

// LoadConfig decodes the file at path over tablefmt.DefaultConfig. Keys the
// config does not know are rejected. The returned error wraps the
// underlying os error when the file cannot be read.
func LoadConfig(path string) (tablefmt.Config, error) {
	cfg := tablefmt.DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return tablefmt.DefaultConfig(), fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return tablefmt.DefaultConfig(), fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}
