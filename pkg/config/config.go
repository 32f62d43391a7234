// Package config loads mm's YAML configuration.
package config

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mm-notes/mm/pkg/paths"
)

// FileName is the configuration file inside the data directory.
const FileName = "config.yaml"

// Config is the user configuration.
type Config struct {
	File string `yaml:"-" json:"file"`

	// DataDir overrides <home>/.mm.
	DataDir string `yaml:"data-dir" json:"data-dir"`
	// DefaultRepository is opened when no repository is named.
	DefaultRepository string `yaml:"default-repository" json:"default-repository" default:"mm_main_local"`
	// Editor is "builtin", "vim" or any command line; the note path is appended.
	Editor string `yaml:"editor" json:"editor"`

	Log LogConfig `yaml:"log" json:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" json:"level" default:"info"`
}

// Default returns a configuration holding only defaults. The editor falls back
// to $EDITOR, then vim.
func Default() (*Config, error) {
	c := new(Config)
	if err := c.setDefaults(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads the configuration at f. A missing file is not an error: the
// defaults are returned with File set so Save can create it.
func Load(f string) (*Config, error) {
	realpath, err := filepath.Abs(f)
	if err != nil {
		return nil, errors.Wrap(err, "resolve config path failed")
	}

	c, err := Default()
	if err != nil {
		return nil, err
	}
	c.File = realpath

	data, err := os.ReadFile(realpath)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read config file failed")
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrap(err, "parse config file failed")
	}

	// Fill fields the file set to empty values.
	if err := c.setDefaults(); err != nil {
		return nil, err
	}
	return c, nil
}

// DefaultPath returns <data-dir>/config.yaml for the given resolver.
func DefaultPath(r *paths.Resolver) (string, bool) {
	data, ok := r.DataDirectory()
	if !ok {
		return "", false
	}
	return filepath.Join(data, FileName), true
}

// Save writes the configuration to c.File, creating its directory.
func (c *Config) Save() error {
	if c.File == "" {
		return errors.New("config file path not set")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config failed")
	}

	if err := os.MkdirAll(filepath.Dir(c.File), 0o755); err != nil {
		return errors.Wrap(err, "create config directory failed")
	}

	if err := os.WriteFile(c.File, data, 0o644); err != nil {
		return errors.Wrap(err, "write config file failed")
	}
	return nil
}

// Resolver builds the path resolver this configuration describes.
func (c *Config) Resolver() *paths.Resolver {
	r := paths.NewResolver()
	r.DataDir = c.DataDir
	r.DefaultName = c.DefaultRepository
	return r
}

func (c *Config) setDefaults() error {
	if err := defaults.Set(c); err != nil {
		return errors.Wrap(err, "set default config failed")
	}
	if c.Editor == "" {
		c.Editor = os.Getenv("EDITOR")
	}
	if c.Editor == "" {
		c.Editor = "vim"
	}
	return nil
}
