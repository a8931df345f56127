// Package config holds dictbench's runtime configuration and its
// viper-backed loader.
package config

import "github.com/spf13/viper"

// Config holds the tunables shared by every dictionary build.
type Config struct {
	MaxLoadFactor    float64 `yaml:"max_load_factor"`
	InitialTableSize int     `yaml:"initial_table_size"`
	BooksDir         string  `yaml:"books_dir"`
	ResultsDir       string  `yaml:"results_dir"`
}

// InitFromViper populates c from v, filling in defaults for anything unset.
func (c *Config) InitFromViper(v *viper.Viper) {
	c.MaxLoadFactor = v.GetFloat64("max_load_factor")
	if c.MaxLoadFactor <= 0 {
		c.MaxLoadFactor = 1.0
	}

	c.InitialTableSize = v.GetInt("initial_table_size")
	if c.InitialTableSize <= 0 {
		c.InitialTableSize = 19
	}

	c.BooksDir = v.GetString("books_dir")
	if c.BooksDir == "" {
		c.BooksDir = "livros"
	}

	c.ResultsDir = v.GetString("results_dir")
	if c.ResultsDir == "" {
		c.ResultsDir = "resultados"
	}
}

// Default returns a Config populated with an empty viper instance, i.e.
// all defaults.
func Default() *Config {
	c := &Config{}
	c.InitFromViper(viper.New())
	return c
}
