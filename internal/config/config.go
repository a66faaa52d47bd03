package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile      = "config.yaml"
	defaultCredentialsFile = "credentials.yaml"
	projectConfigFile      = ".gtd.yaml"
)

type Config struct {
	BaseURL         string `yaml:"base_url"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	DefaultProfile  string `yaml:"default_profile"`
	DefaultCriteria string `yaml:"default_criteria"`
	TableWidth      int    `yaml:"table_width"`
}

type Credentials struct {
	Profiles map[string]Credential `yaml:"profiles"`
}

type Credential struct {
	Token string `yaml:"token"`
}

func DefaultUserConfigPath() (string, error) {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "gtd", defaultConfigFile), nil
}

func DefaultProjectConfigPath(cwd string) string {
	return filepath.Join(cwd, projectConfigFile)
}

func CredentialsPathFromConfig(configPath string) string {
	dir := filepath.Dir(configPath)
	return filepath.Join(dir, defaultCredentialsFile)
}

func LoadConfig(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, false, nil
		}
		return Config{}, false, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, true, fmt.Errorf("parse config: %w", err)
	}
	return cfg, true, nil
}

func LoadCredentials(path string) (Credentials, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Credentials{}, false, nil
		}
		return Credentials{}, false, err
	}
	var creds Credentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return Credentials{}, true, fmt.Errorf("parse credentials: %w", err)
	}
	if creds.Profiles == nil {
		creds.Profiles = map[string]Credential{}
	}
	return creds, true, nil
}

func SaveCredentials(path string, creds Credentials) error {
	if creds.Profiles == nil {
		creds.Profiles = map[string]Credential{}
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	data, err := yaml.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

func SaveConfig(path string, cfg Config) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

func EnsureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o700)
}

// MergeConfig overlays a project config on the user config; set fields win.
func MergeConfig(base Config, override Config) Config {
	result := base
	if override.BaseURL != "" {
		result.BaseURL = override.BaseURL
	}
	if override.TimeoutSeconds > 0 {
		result.TimeoutSeconds = override.TimeoutSeconds
	}
	if override.DefaultProfile != "" {
		result.DefaultProfile = override.DefaultProfile
	}
	if override.DefaultCriteria != "" {
		result.DefaultCriteria = override.DefaultCriteria
	}
	if override.TableWidth > 0 {
		result.TableWidth = override.TableWidth
	}
	return result
}
