package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// config holds the REPL settings decodable from a TOML file:
//
//	prompt = "vectors> "
//	history_file = "/home/me/.space_vectors_history"
type config struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
}

func defaultConfig() config {
	home, _ := os.UserHomeDir()
	return config{
		Prompt:      "> ",
		HistoryFile: filepath.Join(home, ".space_vectors_history"),
	}
}

// loadConfig reads the TOML file at path over the defaults. An empty path
// returns the defaults unchanged.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}
