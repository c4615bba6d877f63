package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/diagrams/pkg/errors"
	"github.com/matzehuels/diagrams/pkg/pipeline"
)

// fileConfig mirrors the TOML config file. Zero values mean "not set".
type fileConfig struct {
	Width      float64  `toml:"width"`
	Height     float64  `toml:"height"`
	Background string   `toml:"background"`
	Scale      float64  `toml:"scale"`
	Formats    []string `toml:"formats"`
	Output     string   `toml:"output"`
}

// loadConfig reads the config file at path. With an empty path it tries the
// default location and returns an empty config if there is no file there.
// It also returns the path that was actually read ("" if none).
func loadConfig(path string) (fileConfig, string, error) {
	var cfg fileConfig

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, "", nil
		}
		path = filepath.Join(dir, configFile)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, "", nil
		}
		if os.IsNotExist(err) {
			return cfg, "", errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return cfg, "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "stat %s", path)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, "", errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, path, nil
}

// options converts the file config into pipeline options.
func (fc fileConfig) options() pipeline.Options {
	return pipeline.Options{
		Width:      fc.Width,
		Height:     fc.Height,
		Background: fc.Background,
		Scale:      fc.Scale,
		Formats:    fc.Formats,
	}
}
