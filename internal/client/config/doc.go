// Package config loads runtime configuration for the hrverify CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config (see parseJSON).
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL, e.g. http://localhost:8080
//	-t int      request timeout (seconds)
//	-d string   path of the SQLite file holding the session
//	-l string   log level: debug|info|warn|error
//
// # JSON schema
//
// Durations accept strings like "10s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://localhost:8080",
//	  "request_timeout": "10s",
//	  "session_db": "session.db",
//	  "log_level": "info",
//	  "admin_security_code": "ADMIN-2025-KEY",
//	  "demo_admin_otp": "123456"
//	}
//
// Keys missing from the file keep their default values.
package config
