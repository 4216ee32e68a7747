// Package config loads the optional chatconv configuration file.
// Precedence, lowest to highest: built-in defaults, config file,
// environment variables. Command-line flags override everything and
// are applied by the cmd layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	configFolderName  = "chatconv"
	configFileName    = "config.toml"
	configPathEnvName = "XDG_CONFIG_HOME"
)

// Config holds the resolved runtime settings.
type Config struct {
	// DefaultFormat is used when no output format flag is given.
	// Empty means the format flag is required.
	DefaultFormat string
	// OutputDir is where converted files land. Empty means "next to
	// the input file".
	OutputDir string
}

type fileConfig struct {
	DefaultFormat *string `toml:"default_format"`
	OutputDir     *string `toml:"output_dir"`
}

// Load resolves the configuration from file and environment.
func Load() (Config, error) {
	var cfg Config

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}

	configPath, hasConfig, err := findConfigPath(home)
	if err != nil {
		return Config{}, err
	}
	if hasConfig {
		fileCfg, err := loadFileConfig(configPath)
		if err != nil {
			return Config{}, err
		}
		applyFileConfig(&cfg, fileCfg)
	}

	applyEnvOverrides(&cfg)

	if err := validateFormat(cfg.DefaultFormat); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func findConfigPath(home string) (string, bool, error) {
	candidates := make([]string, 0, 2)
	if xdgConfigHome := strings.TrimSpace(os.Getenv(configPathEnvName)); xdgConfigHome != "" {
		candidates = append(candidates, filepath.Join(xdgConfigHome, configFolderName, configFileName))
	}
	candidates = append(candidates, filepath.Join(home, ".config", configFolderName, configFileName))

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", false, fmt.Errorf("config path %q is a directory; expected a file", candidate)
			}
			return candidate, true, nil
		}
		if os.IsNotExist(err) {
			continue
		}
		return "", false, fmt.Errorf("failed to read config path %q: %w", candidate, err)
	}
	return "", false, nil
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		unknown := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			unknown = append(unknown, key.String())
		}
		sort.Strings(unknown)
		return fileConfig{}, fmt.Errorf("invalid config file %q: unknown key(s): %s", path, strings.Join(unknown, ", "))
	}
	return cfg, nil
}

func applyFileConfig(cfg *Config, fileCfg fileConfig) {
	if fileCfg.DefaultFormat != nil {
		cfg.DefaultFormat = strings.TrimSpace(*fileCfg.DefaultFormat)
	}
	if fileCfg.OutputDir != nil {
		cfg.OutputDir = strings.TrimSpace(*fileCfg.OutputDir)
	}
}

func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("CHATCONV_FORMAT"); ok && v != "" {
		cfg.DefaultFormat = v
	}
	if v, ok := os.LookupEnv("CHATCONV_OUTPUT_DIR"); ok && v != "" {
		cfg.OutputDir = v
	}
}

func validateFormat(format string) error {
	switch format {
	case "", "markdown", "workbench":
		return nil
	default:
		return fmt.Errorf("invalid default_format %q: must be markdown or workbench", format)
	}
}
