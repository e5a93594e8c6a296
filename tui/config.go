package tui

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the scrollback front-end configuration, usually read from a TOML file.
type Config struct {
	Scrollback ScrollbackConfig `toml:"scrollback"`
	Log        LogConfig        `toml:"log"`
	Style      StyleConfig      `toml:"style"`
}

type ScrollbackConfig struct {
	// rows kept free below the output of a block
	ReserveRows int `toml:"reserve_rows"`

	MinBlockRows int `toml:"min_block_rows"`

	// rows moved by one arrow key press
	ScrollStep int `toml:"scroll_step"`
}

type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

type StyleConfig struct {
	ScrollbarChar string `toml:"scrollbar_char"`
	ThumbChar     string `toml:"thumb_char"`
	HeaderColor   string `toml:"header_color"`
}

func DefaultConfig() *Config {
	return &Config{
		Scrollback: ScrollbackConfig{
			ReserveRows:  0,
			MinBlockRows: 1,
			ScrollStep:   1,
		},
		Style: StyleConfig{
			ScrollbarChar: "│",
			ThumbChar:     "█",
			HeaderColor:   "yellow",
		},
	}
}

// LoadConfig reads the TOML file at path on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("cannot load config %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// ParseConfig reads TOML from data on top of the defaults.
func ParseConfig(data string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("parse error in config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	c.Scrollback.ReserveRows = max(0, c.Scrollback.ReserveRows)
	c.Scrollback.MinBlockRows = max(0, c.Scrollback.MinBlockRows)
	c.Scrollback.ScrollStep = max(1, c.Scrollback.ScrollStep)

	defaults := DefaultConfig().Style
	if c.Style.ScrollbarChar == "" {
		c.Style.ScrollbarChar = defaults.ScrollbarChar
	}
	if c.Style.ThumbChar == "" {
		c.Style.ThumbChar = defaults.ThumbChar
	}
}
