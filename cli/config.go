package cli

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v2"
)

// These are variables so tests can point the CLI at a temp directory.
var (
	configPath = defaultConfigPath
	homeDir    = os.UserHomeDir
)

// Config carries everything the CLI needs to construct the core: where the
// vault lives and how long copied passwords stay on the clipboard. Values
// come from ~/.config/mypw/config.yaml with environment overrides.
type Config struct {
	VaultPath             string `yaml:"vault_path" env:"MYPW_VAULT_PATH"`
	ClipboardClearSeconds int    `yaml:"clipboard_clear_seconds" env:"MYPW_CLIPBOARD_CLEAR_SECONDS"`
}

func defaultConfigPath() string {
	home, err := homeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "mypw", "config.yaml")
}

// DefaultVaultPath returns ~/.mypw/vault.enc, creating the directory with
// owner-only permissions.
func DefaultVaultPath() (string, error) {
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".mypw")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "vault.enc"), nil
}

// LoadConfig reads the YAML config file if present, applies environment
// overrides, then fills remaining gaps with defaults.
func LoadConfig() (*Config, error) {
	c := &Config{}

	if cp := configPath(); cp != "" {
		data, err := os.ReadFile(cp)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, c); err != nil {
				return nil, err
			}
		case errors.Is(err, os.ErrNotExist):
			// No config file is the normal case.
		default:
			return nil, err
		}
	}

	if err := env.Parse(c); err != nil {
		return nil, err
	}

	if c.VaultPath == "" {
		path, err := DefaultVaultPath()
		if err != nil {
			return nil, err
		}
		c.VaultPath = path
	}
	if c.ClipboardClearSeconds <= 0 {
		c.ClipboardClearSeconds = 15
	}
	return c, nil
}
