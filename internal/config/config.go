// Package config loads the optional blackjack.hcl session file. A
// missing file yields defaults, so the binary runs with no setup.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// SessionConfig represents the complete session configuration
type SessionConfig struct {
	Session SessionSettings `hcl:"session,block"`
}

// SessionSettings contains session-level configuration
type SessionSettings struct {
	LogLevel      string `hcl:"log_level,optional"`
	LogFile       string `hcl:"log_file,optional"`
	Seed          int64  `hcl:"seed,optional"`
	DealerDelayMS int    `hcl:"dealer_delay_ms,optional"`
}

// DefaultSessionConfig returns default session configuration
func DefaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		Session: SessionSettings{
			LogLevel:      "info",
			LogFile:       "blackjack.log",
			DealerDelayMS: 600,
		},
	}
}

// LoadSessionConfig loads session configuration from an HCL file,
// falling back to defaults when the file does not exist.
func LoadSessionConfig(filename string) (*SessionConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultSessionConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config SessionConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Session.LogLevel == "" {
		config.Session.LogLevel = "info"
	}
	if config.Session.LogFile == "" {
		config.Session.LogFile = "blackjack.log"
	}
	if config.Session.DealerDelayMS == 0 {
		config.Session.DealerDelayMS = 600
	}

	return &config, nil
}
