package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Material struct {
	Formula string
	Density float64 // [g/cm^3]
}

type Config struct {
	DataDir   string
	OutputDir string
	Threads   int
	Energies  []float64 // [keV]
	Materials map[string]Material
}

// Load decodes a run configuration; the .toml suffix is optional.
func Load(configFileName string) (Config, error) {
	var config Config
	name := strings.TrimSuffix(configFileName, ".toml")
	if _, err := toml.DecodeFile(name+".toml", &config); err != nil {
		return Config{}, err
	}
	if len(config.Materials) == 0 {
		return Config{}, fmt.Errorf("no materials provided")
	}
	if len(config.Energies) == 0 {
		return Config{}, fmt.Errorf("no energies provided")
	}
	for name, material := range config.Materials {
		if material.Formula == "" {
			return Config{}, fmt.Errorf("material %s lacks a formula", name)
		}
		if material.Density <= 0 {
			return Config{}, fmt.Errorf("material %s lacks a positive density", name)
		}
	}
	if config.DataDir == "" {
		config.DataDir = "data"
	}
	return config, nil
}
