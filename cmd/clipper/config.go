package main

import (
	"os"

	"github.com/fwojciec/clipper"
	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML configuration file. Values left out of the
// file keep their defaults; command-line flags override both.
type FileConfig struct {
	Extraction clipper.Config `yaml:"extraction"`
	Enhance    EnhanceConfig  `yaml:"enhance"`
	Log        LogConfig      `yaml:"log"`
}

// EnhanceConfig configures the Gemini enhancement stage.
type EnhanceConfig struct {
	Mode            clipper.EnhancementMode `yaml:"mode"`
	Model           string                  `yaml:"model"`
	MaxContentChars int                     `yaml:"maxContentChars"`
}

// LogConfig configures the extraction log.
type LogConfig struct {
	DB string `yaml:"db"`
}

// DefaultFileConfig returns the configuration used without a file.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		Extraction: clipper.DefaultConfig(),
		Enhance: EnhanceConfig{
			Mode: clipper.EnhanceSummarize,
		},
	}
}

// LoadConfig reads a YAML configuration file over the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (FileConfig, error) {
	cfg := DefaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, clipper.Errorf(clipper.EINVALID, "cannot read config file %q: %v", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, clipper.Errorf(clipper.EINVALID, "invalid config file %q: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate returns an error if the configuration contains invalid values.
func (c *FileConfig) Validate() error {
	if err := c.Extraction.Validate(); err != nil {
		return err
	}
	if c.Enhance.Mode != "" {
		if err := c.Enhance.Mode.Validate(); err != nil {
			return err
		}
	}
	if c.Enhance.MaxContentChars < 0 {
		return clipper.Errorf(clipper.EINVALID, "max content chars must not be negative")
	}
	return nil
}
