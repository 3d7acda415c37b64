package renderconfig

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the render config file, relative to the process working directory.
const ConfigPath = "config/render.yaml"

// EnvPath is the optional dotenv file read after ConfigPath.
const EnvPath = ".env"

// Environment variables that override the YAML values.
const (
	EnvBlenderPath = "BLENDER_PATH"
	EnvLogPath     = "RENDER_LOG_PATH"
)

// Config holds where to find Blender and where to log. None of it is required;
// an empty LogPath keeps diagnostics in memory.
type Config struct {
	BlenderPath string `yaml:"blender_path,omitempty"`
	LogPath     string `yaml:"log_path,omitempty"`
}

// Default returns the settings used when nothing is configured: blender on PATH and no log file,
// so a run leaves nothing behind but its output image.
func Default() Config {
	return Config{
		BlenderPath: "blender",
	}
}

// Load reads config from path. A missing file yields Default() without error.
// Fields left empty in the file keep their default.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("renderconfig: %w", err)
	}
	var fromFile Config
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return c, fmt.Errorf("renderconfig: %s: %w", path, err)
	}
	c.merge(fromFile)
	return c, nil
}

// Resolve loads configPath, then applies envPath and the lookup func (os.LookupEnv in main) on top.
// Process environment wins over the dotenv file.
func Resolve(configPath, envPath string, lookup func(string) (string, bool)) (Config, error) {
	c, err := Load(configPath)
	if err != nil {
		return c, err
	}
	vars, err := ReadDotEnv(envPath)
	if err != nil {
		return c, err
	}
	get := func(key string) string {
		if lookup != nil {
			if v, ok := lookup(key); ok && v != "" {
				return v
			}
		}
		return vars[key]
	}
	c.merge(Config{
		BlenderPath: get(EnvBlenderPath),
		LogPath:     get(EnvLogPath),
	})
	return c, nil
}

func (c *Config) merge(o Config) {
	if o.BlenderPath != "" {
		c.BlenderPath = o.BlenderPath
	}
	if o.LogPath != "" {
		c.LogPath = o.LogPath
	}
}
