package engine

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// FileConfig is the shape of the optional TOML configuration file, grounded
// on the ambient convention of keeping runtime knobs out of flags for
// anything beyond the basics. Zero fields keep the engine's built-in
// defaults.
type FileConfig struct {
	Search SearchConfig
}

// SearchConfig holds search-related settings read from a config file.
type SearchConfig struct {
	Depth uint
	// Quiescence toggles the quiescence extension. A pointer so an absent
	// key in the file leaves it at nil, distinct from an explicit "false";
	// both the absent and true cases keep quiescence enabled.
	Quiescence *bool
}

// LoadConfig decodes a TOML file at path into Options. A missing or
// unreadable file is not an error the caller must propagate: it falls back
// to defaults, the same policy as a malformed position file.
func LoadConfig(path string) (Options, error) {
	var fc FileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return Options{}, fmt.Errorf("engine: decode config %s: %w", path, err)
	}

	opts := Options{Depth: fc.Search.Depth}
	if fc.Search.Quiescence != nil && !*fc.Search.Quiescence {
		opts.NoQuiescence = true
	}
	return opts, nil
}
