package todoctl

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const defaultServerURL = "http://localhost:8080"

// Config is read from ~/.config/todoctl/config.toml:
//
//	server_url = "http://localhost:8080"
//	timeout = "10s"   # optional; requests never time out when unset
type Config struct {
	ServerURL string   `toml:"server_url"`
	Timeout   Duration `toml:"timeout"`
}

// Duration lets the config file spell timeouts as "10s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func DefaultConfig() Config {
	return Config{
		ServerURL: defaultServerURL,
	}
}

// DefaultConfigPath returns ~/.config/todoctl/config.toml (or the OS
// equivalent).
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "todoctl", "config.toml")
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = defaultServerURL
	}
	if cfg.Timeout.Duration < 0 {
		cfg.Timeout = Duration{}
	}
	return cfg, nil
}
