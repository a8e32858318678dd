package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the toolkit's defaults. Command-line flags override any
// field per run.
type Config struct {
	OutDir        string   `toml:"out_dir"`
	Export        string   `toml:"export"`
	Keywords      []string `toml:"keywords"`
	Services      []string `toml:"services"`
	CaseSensitive bool     `toml:"case_sensitive"`
	MaxSamples    int      `toml:"max_samples"`
	MaxLineLength int      `toml:"max_line_length"`
}

const (
	defaultConfigPath = "~/.config/opsdesk/config.toml"
	defaultOutDir     = "./reports"
	defaultExport     = ExportXLSX
)

// Export format names accepted in config and on the command line.
const (
	ExportXLSX = "xlsx"
	ExportCSV  = "csv"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutDir:   defaultOutDir,
		Export:   defaultExport,
		Keywords: []string{"error"},
	}
}

// Load locates and parses the opsdesk config, falling back to defaults when
// the file is missing. An empty path selects the default location.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(bytes, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.OutDir = strings.TrimSpace(cfg.OutDir)
	if cfg.OutDir == "" {
		cfg.OutDir = defaultOutDir
	}
	cfg.Export = strings.ToLower(strings.TrimSpace(cfg.Export))
	if cfg.Export == "" {
		cfg.Export = defaultExport
	}
	cfg.Keywords = cleanList(cfg.Keywords)
	if len(cfg.Keywords) == 0 {
		cfg.Keywords = []string{"error"}
	}
	cfg.Services = cleanList(cfg.Services)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ErrInvalid marks configuration values no workflow can use, from the file
// or from flags.
var ErrInvalid = errors.New("invalid configuration")

// Validate rejects values no workflow can use.
func (c Config) Validate() error {
	if c.Export != ExportXLSX && c.Export != ExportCSV {
		return fmt.Errorf("%w: export must be %q or %q, got %q", ErrInvalid, ExportXLSX, ExportCSV, c.Export)
	}
	if c.MaxSamples < 0 {
		return fmt.Errorf("%w: max_samples must not be negative, got %d", ErrInvalid, c.MaxSamples)
	}
	if c.MaxLineLength < 0 {
		return fmt.Errorf("%w: max_line_length must not be negative, got %d", ErrInvalid, c.MaxLineLength)
	}
	return nil
}

// SplitList breaks a comma-separated flag value into trimmed, non-empty
// entries.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return cleanList(strings.Split(s, ","))
}

func cleanList(items []string) []string {
	var out []string
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
