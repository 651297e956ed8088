package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

// envPrefix marks environment overrides; "__" maps to "."
// (GAUSS_G16__COMMAND → g16.command).
const envPrefix = "GAUSS_"

// G16 describes how the g16 executable is started.
type G16 struct {
	Command    string   `koanf:"command" validate:"required"`
	Args       []string `koanf:"args"`
	ScratchDir string   `koanf:"scratch_dir"`
}

// Log holds logger tunables.
type Log struct {
	Dir     string `koanf:"dir" validate:"required"`
	Level   string `koanf:"level" validate:"required,oneof=debug info warn error"`
	Console bool   `koanf:"console"`
}

// Metrics configures the Prometheus textfile written after each run.
type Metrics struct {
	File string `koanf:"file"`
}

// Settings configures the tool itself, as opposed to a job file.
type Settings struct {
	G16     G16     `koanf:"g16"`
	Log     Log     `koanf:"log"`
	Metrics Metrics `koanf:"metrics"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() *Settings {
	return &Settings{
		G16: G16{Command: "g16"},
		Log: Log{Dir: filepath.Join(".gauss", "logs"), Level: "info"},
	}
}

// LoadSettings builds Settings from three layers, highest precedence last:
// an optional .env next to path, the optional YAML file at path, and
// GAUSS_-prefixed environment variables. A missing file is not an error.
func LoadSettings(path string) (*Settings, error) {
	_ = godotenv.Load(filepath.Join(filepath.Dir(path), ".env"))

	k := koanf.New(".")

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			zap.S().Errorw("settings yaml load failed", "file", path, "err", err)
			return nil, fmt.Errorf("loading settings %s: %w", path, err)
		}
		zap.S().Debugw("settings yaml loaded", "file", path)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading settings %s: %w", path, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		zap.S().Errorw("settings env overlay failed", "err", err)
		return nil, fmt.Errorf("loading settings from environment: %w", err)
	}

	s := DefaultSettings()
	if err := k.Unmarshal("", s); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	if err := validateSettings(s); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return s, nil
}

func envKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(s, envPrefix), "__", "."))
}
