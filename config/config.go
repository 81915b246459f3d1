/*
File    : lox/config/config.go

Config is the REPL/CLI's optional settings file, grounded on the
teacher's main.go banner/prompt/license constants (BANNER, PROMPT,
AUTHOR, LICENCE, LINE), here made user-overridable instead of
hardcoded, loaded from YAML the way a real CLI tool lets an operator
customize a prompt without a rebuild.
*/
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything the REPL needs to greet a user and remember
// their history, and everything the CLI needs to decide on color.
type Config struct {
	Banner      string `yaml:"banner"`
	Version     string `yaml:"version"`
	Author      string `yaml:"author"`
	License     string `yaml:"license"`
	Prompt      string `yaml:"prompt"`
	Color       bool   `yaml:"color"`
	HistoryFile string `yaml:"history_file"`
}

// Default returns the built-in configuration used when no .loxrc.yaml
// is found, or a field is left unset in one that is.
func Default() *Config {
	return &Config{
		Banner:      defaultBanner,
		Version:     "v1.0.0",
		Author:      "lox",
		License:     "MIT",
		Prompt:      "lox> ",
		Color:       true,
		HistoryFile: ".lox_history",
	}
}

const defaultBanner = `
  __   _____  __
 / /  / __/ |/_/
/ /__/ _/_>  <
\___/___/_/|_|
`

// Load reads path (typically ".loxrc.yaml" in the current directory) and
// overlays any fields it sets onto Default(). A missing file is not an
// error: it just means the defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
