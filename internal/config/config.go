package config

import "github.com/hance08/teller/internal/constants"

type Config struct {
	Storage    StorageConfig  `mapstructure:"storage"`
	Operator   OperatorConfig `mapstructure:"operator"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

// OperatorConfig holds the shared staff secret. An empty secret disables staff login.
type OperatorConfig struct {
	Secret string `mapstructure:"secret"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

func NewDefault() *Config {
	return &Config{
		Storage:  StorageConfig{Driver: constants.DriverJSON, Path: ""},
		Operator: OperatorConfig{Secret: ""},
		Log:      LogConfig{Level: "warn", Format: "console"},
	}
}
