package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/erayd/readable/http"
	yaml "gopkg.in/yaml.v3"
)

// Store drivers.
const (
	DriverSQLite = "sqlite"
	DriverFS     = "fs"
)

// Config is the file-level configuration. Environment variables override
// the file and command flags override both.
type Config struct {
	Store struct {
		Driver string `yaml:"driver"`
		Path   string `yaml:"path"`
	} `yaml:"store"`

	Server struct {
		Addr        string  `yaml:"addr"`
		HomeURL     string  `yaml:"homeURL"`
		SubmitRate  float64 `yaml:"submitRate"`
		SubmitBurst int     `yaml:"submitBurst"`
	} `yaml:"server"`

	Extract struct {
		Container string `yaml:"container"`
	} `yaml:"extract"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	var c Config
	c.Store.Driver = DriverSQLite
	c.Store.Path = defaultDBPath()
	c.Server.Addr = http.DefaultAddr
	c.Server.HomeURL = http.DefaultHomeURL
	c.Server.SubmitRate = 1
	c.Server.SubmitBurst = 5
	return c
}

// LoadConfigFile reads a YAML file over the defaults.
func LoadConfigFile(path string) (Config, error) {
	c := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parse yaml: %w", err)
	}
	return c, nil
}

// ApplyEnv overrides the store from READABLE_CACHE_DIR or READABLE_DB. The
// database wins when both are set.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if dir := getenv("READABLE_CACHE_DIR"); dir != "" {
		c.Store.Driver = DriverFS
		c.Store.Path = dir
	}
	if path := getenv("READABLE_DB"); path != "" {
		c.Store.Driver = DriverSQLite
		c.Store.Path = path
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "readable.db"
	}
	return filepath.Join(home, ".readable", "readable.db")
}
