package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the hrverify CLI.
//
// AdminSecurityCode and DemoAdminOTP are demo placeholders used by the admin
// signup gate; they are not a security mechanism.
type Config struct {
	BaseURL           string
	RequestTimeout    time.Duration
	SessionDB         string
	LogLevel          string
	AdminSecurityCode string
	DemoAdminOTP      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080"
	c.RequestTimeout = 10 * time.Second
	c.SessionDB = "session.db"
	c.LogLevel = "info"
	c.AdminSecurityCode = "ADMIN-2025-KEY"
	c.DemoAdminOTP = "123456"
}

// Load builds a Config from defaults, then the JSON file named in args
// (if any), then flags in args.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

// LoadConfig is Load over the process arguments.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}
