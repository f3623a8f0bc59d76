package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config captures what casewatch needs to run: the monitored accounts
// and the refresh cadence.
type Config struct {
	Accounts     []Account
	RefreshEvery time.Duration
}

// Account identifies one monitored support account.
type Account struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

const (
	// DefaultRefreshInterval is how often a full fetch pass runs when
	// no override is given.
	DefaultRefreshInterval = 15 * time.Minute

	// MinRefreshInterval bounds operator overrides; the portal API is
	// not built for tight polling.
	MinRefreshInterval = time.Minute
)

// Load reads and parses the accounts document. Unlike preferences, a
// missing or malformed accounts file is fatal: without accounts there
// is nothing to monitor.
func Load(path string) (Config, error) {
	resolved, err := expandPath(path)
	if err != nil {
		return Config{}, err
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		return Config{}, fmt.Errorf("read accounts file: %w", err)
	}

	var raw struct {
		Accounts []Account `yaml:"accounts"`
	}
	if err := yaml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse accounts file: %w", err)
	}
	if len(raw.Accounts) == 0 {
		return Config{}, fmt.Errorf("accounts file %s lists no accounts", resolved)
	}

	return Config{
		Accounts:     raw.Accounts,
		RefreshEvery: DefaultRefreshInterval,
	}, nil
}

// ClampRefresh applies an operator-supplied interval, enforcing the
// floor and falling back to the default for non-positive values.
func (c *Config) ClampRefresh(every time.Duration) {
	switch {
	case every <= 0:
		c.RefreshEvery = DefaultRefreshInterval
	case every < MinRefreshInterval:
		c.RefreshEvery = MinRefreshInterval
	default:
		c.RefreshEvery = every
	}
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("accounts file path is empty")
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
