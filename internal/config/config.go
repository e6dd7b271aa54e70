package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"
)

// Config represents the gradegate configuration.
type Config struct {
	// Bin is the external review tool binary to invoke.
	Bin string `json:"bin"`
	// TimeoutSeconds bounds a single tool invocation.
	TimeoutSeconds int `json:"timeoutSeconds"`
	// TaskType is the assignment variant: backend, frontend, or fullstack.
	TaskType string `json:"taskType"`
	// Redact scrubs credential-shaped strings from tool diagnostics before
	// they are persisted or logged.
	Redact bool `json:"redact"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Bin:            "claude",
		TimeoutSeconds: 180,
		TaskType:       "fullstack",
		Redact:         true,
	}
}

// Timeout returns the invocation timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ConfigDir returns the platform-appropriate config directory for gradegate.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gradegate"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "gradegate"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "gradegate"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "gradegate"), nil
	default:
		return filepath.Join(home, ".config", "gradegate"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. The overrides map comes from CLI flags (only non-zero values
// should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Bin != "" {
		dst.Bin = src.Bin
	}
	if src.TimeoutSeconds > 0 {
		dst.TimeoutSeconds = src.TimeoutSeconds
	}
	if src.TaskType != "" {
		dst.TaskType = src.TaskType
	}
	// JSON zero value for bool can't be told apart from unset; keep redaction
	// on unless the file is the only source that could have turned it off.
	dst.Redact = src.Redact || dst.Redact
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("GRADEGATE_BIN"); v != "" {
		cfg.Bin = v
	}
	if v := os.Getenv("GRADEGATE_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("GRADEGATE_TASK_TYPE"); v != "" {
		cfg.TaskType = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["bin"]; ok && v != "" {
		cfg.Bin = v
	}
	if v, ok := overrides["timeoutSeconds"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutSeconds = n
		}
	}
	if v, ok := overrides["taskType"]; ok && v != "" {
		cfg.TaskType = v
	}
}

// SetField sets a single config field by key name. Returns an error if the
// key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "bin":
		cfg.Bin = value
	case "timeoutSeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("timeoutSeconds must be an integer: %w", err)
		}
		cfg.TimeoutSeconds = n
	case "taskType":
		cfg.TaskType = value
	case "redact":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("redact must be a boolean: %w", err)
		}
		cfg.Redact = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
