package fractal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is everything read at startup by the coordinator and worker processes.
type Config struct {
	Port   string `yaml:"port" toml:"port"`
	Broker string `yaml:"broker" toml:"broker"`
	Render string `yaml:"render" toml:"render"`
	OutDir string `yaml:"out" toml:"out"`
	Bench  string `yaml:"bench" toml:"bench"`
	Params Params `yaml:"params" toml:"params"`
}

func DefaultConfig() Config {
	return Config{
		Port:   "8030",
		Broker: "127.0.0.1:8030",
		Render: "sdl",
		OutDir: "out",
		Params: DefaultParams(),
	}
}

// LoadConfig overlays the file at path onto cfg. Keys missing from the file keep their current value.
func LoadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unknown config format %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
