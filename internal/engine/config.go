package engine

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config controls a transformation pass.
type Config struct {
	// Debug controls whether debug_-prefixed contracts are injected.
	Debug bool `yaml:"debug"`
	// CacheDir holds shadow files and overlay.json. Relative paths are
	// taken from the project root.
	CacheDir string `yaml:"cache_dir"`
	// Skip lists directory names excluded from the scan.
	Skip []string `yaml:"skip"`
}

// DefaultConfig returns the configuration used when no config file is
// present.
func DefaultConfig() Config {
	return Config{
		Debug:    true,
		CacheDir: ".hoare",
		Skip:     []string{"vendor", "testdata"},
	}
}

// LoadConfig reads a YAML configuration file. A missing file is not an
// error: the defaults apply. Keys absent from the file keep their default
// values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parse config %s", path)
	}

	return cfg, nil
}
