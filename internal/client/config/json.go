package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/hrverify/internal/flagx"
	"github.com/dmitrijs2005/hrverify/internal/timex"
)

// JSONConfig is the on-disk shape of the config file.
type JSONConfig struct {
	BaseURL           string         `json:"base_url"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	SessionDB         string         `json:"session_db"`
	LogLevel          string         `json:"log_level"`
	AdminSecurityCode string         `json:"admin_security_code"`
	DemoAdminOTP      string         `json:"demo_admin_otp"`
}

// parseJSON overlays cfg with the non-empty values of the file named by
// -c/-config. No file flag means no change.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SessionDB != "" {
		cfg.SessionDB = jc.SessionDB
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.AdminSecurityCode != "" {
		cfg.AdminSecurityCode = jc.AdminSecurityCode
	}
	if jc.DemoAdminOTP != "" {
		cfg.DemoAdminOTP = jc.DemoAdminOTP
	}
	return nil
}
