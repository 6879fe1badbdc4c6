package pkg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/provide-io/pyembed/go/pyembed/pkg/interp"
)

// LoadConfig decodes an interpreter config document in the given format
// ("json" or "toml") on top of the default isolated profile.
func LoadConfig(data []byte, format string) (*interp.Config, error) {
	cfg := interp.DefaultConfig()
	switch format {
	case "json":
		if err := cfg.PopulateJSON(data); err != nil {
			return nil, err
		}
	case "toml":
		if err := cfg.PopulateTOML(data); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (valid: json, toml)", format)
	}
	return cfg, nil
}

// LoadConfigFile decodes an interpreter config document from disk, picking
// the format from the file extension (.toml is TOML, everything else JSON).
func LoadConfigFile(path string) (*interp.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	format := "json"
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		format = "toml"
	}
	return LoadConfig(data, format)
}
