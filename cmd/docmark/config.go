package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// config is the optional TOML file given with --config.
//
//	override = false
//	max_passes = 16
//	max_depth = 64
//
//	[variables]
//	version = "1.2.0"
type config struct {
	Override  bool              `toml:"override"`
	MaxPasses int               `toml:"max_passes"`
	MaxDepth  int               `toml:"max_depth"`
	Variables map[string]string `toml:"variables"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}
