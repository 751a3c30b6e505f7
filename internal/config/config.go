package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"shellconf/internal/constants"
)

// AppConfig holds the tool configuration settings.
type AppConfig struct {
	// DefaultFile is used when no --file flag is given.
	DefaultFile string `toml:"default_file"`
	// Backup controls whether saving first copies the target to a .bak file.
	Backup bool `toml:"backup"`
}

// Defaults returns the built-in configuration.
func Defaults() AppConfig {
	return AppConfig{
		DefaultFile: "",
		Backup:      true,
	}
}

// Path returns the location of the configuration file under the XDG config
// directory.
func Path() string {
	return filepath.Join(xdg.ConfigHome, constants.ConfigDirName, constants.ConfigFileName)
}

// Load reads the configuration from the default location. A missing file
// is not an error: defaults are returned.
func Load() (AppConfig, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the configuration from an explicit path.
func LoadFrom(path string) (AppConfig, error) {
	conf := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return conf, nil
		}
		return conf, err
	}

	if err := toml.Unmarshal(data, &conf); err != nil {
		return Defaults(), err
	}
	return conf, nil
}

// Save writes the configuration to the default location, creating the
// directory if needed.
func Save(conf AppConfig) error {
	return SaveTo(conf, Path())
}

// SaveTo writes the configuration to an explicit path.
func SaveTo(conf AppConfig, path string) error {
	if path == "" {
		return errors.New("no configuration path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(conf)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
