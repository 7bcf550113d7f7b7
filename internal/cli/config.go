package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/pixelbridge/svg2png/svgrender"
)

// Config holds the defaults read from the optional TOML config file.
// Command-line flags override every field.
type Config struct {
	Backend     string  `toml:"backend"`      // "oksvg", "resvg" or "rsvg-convert"
	RsvgPath    string  `toml:"rsvg_path"`    // external converter executable
	DefaultZoom float64 `toml:"default_zoom"` // export scale when no flag is given
}

func defaultConfig() Config {
	return Config{Backend: "oksvg", RsvgPath: "rsvg-convert", DefaultZoom: 1.0}
}

// defaultConfigPath returns <user config dir>/svg2png/config.toml, or ""
// when the user config dir cannot be determined.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "svg2png", "config.toml")
}

// loadConfig reads the TOML file at path. A missing file or empty path
// yields the defaults; a malformed file is an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Backend == "" {
		cfg.Backend = "oksvg"
	}
	if cfg.RsvgPath == "" {
		cfg.RsvgPath = "rsvg-convert"
	}
	if cfg.DefaultZoom <= 0 {
		cfg.DefaultZoom = 1.0
	}
	return cfg, nil
}

// backendFor maps a backend name to its svgrender.Backend.
func backendFor(name, rsvgPath string) (svgrender.Backend, error) {
	switch name {
	case "", "oksvg":
		return svgrender.DefaultBackend(), nil
	case "resvg":
		return svgrender.NewResvgBackend()
	case "rsvg", "rsvg-convert":
		return svgrender.ExecBackend{Path: rsvgPath}, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}
