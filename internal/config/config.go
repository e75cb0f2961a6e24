// Package config resolves the XDG configuration directory, the OAuth file
// paths used for publishing, and the YAML settings file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// AppName is the application directory name.
	AppName = "listdeck"

	// SettingsFile holds user settings.
	SettingsFile = "config.yaml"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"
)

// Config is the per-command view of the configuration directory plus the
// common --quiet and --debug flags.
type Config struct {
	Dir      string
	Debug    bool
	Quiet    bool
	Settings Settings // read from Dir/config.yaml
}

// New creates a Config for configDir and loads its settings file.
// If configDir is empty, uses XDG_CONFIG_HOME/listdeck or
// $HOME/.config/listdeck.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	settings, err := LoadSettings(filepath.Join(dir, SettingsFile))
	if err != nil {
		return nil, err
	}
	return &Config{Dir: dir, Settings: settings}, nil
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path to the settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory (0700).
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasSettings reports whether config.yaml exists.
func (c *Config) HasSettings() bool { return exists(c.SettingsPath()) }

// HasOAuthClient reports whether the OAuth client file is present.
func (c *Config) HasOAuthClient() bool { return exists(c.OAuthClientPath()) }

// HasToken reports whether a token has been stored by login.
func (c *Config) HasToken() bool { return exists(c.TokenPath()) }

// RemoveCredentials deletes the stored token and, if client is set, the
// OAuth client file. It returns the paths it removed; missing files are
// skipped.
func (c *Config) RemoveCredentials(client bool) ([]string, error) {
	paths := []string{c.TokenPath()}
	if client {
		paths = append(paths, c.OAuthClientPath())
	}
	var removed []string
	for _, p := range paths {
		err := os.Remove(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return removed, err
		}
		removed = append(removed, p)
	}
	return removed, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
