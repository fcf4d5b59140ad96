package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ConnectionConfig is the on-disk profile for dialing a single device:
// its address, the keep-alive discipline, the receive buffer size, and
// the log level to run under.
type ConnectionConfig struct {
	Name              string `toml:"name"`
	DeviceAddr        string `toml:"device_addr"`
	KeepAlivePeriod   string `toml:"keep_alive_period"`
	ReceiveBufferSize int    `toml:"receive_buffer_size"`
	LogLevel          string `toml:"log_level"`
}

// KeepAlive parses KeepAlivePeriod, defaulting to 7 seconds when unset.
func (c ConnectionConfig) KeepAlive() (time.Duration, error) {
	if strings.TrimSpace(c.KeepAlivePeriod) == "" {
		return 7 * time.Second, nil
	}
	d, err := time.ParseDuration(c.KeepAlivePeriod)
	if err != nil {
		return 0, fmt.Errorf("keep_alive_period: %w", err)
	}
	return d, nil
}

// LoadConnectionConfig reads and validates a ConnectionConfig from path.
func LoadConnectionConfig(path string) (ConnectionConfig, error) {
	var cfg ConnectionConfig
	if err := loadToml(path, &cfg); err != nil {
		return ConnectionConfig{}, err
	}
	if cfg.Name == "" {
		cfg.Name = "wingnrp"
	}
	if cfg.ReceiveBufferSize == 0 {
		cfg.ReceiveBufferSize = 2048
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if err := ValidateConnectionConfig(cfg); err != nil {
		return ConnectionConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

// ValidateConnectionConfig checks the fields LoadConnectionConfig cannot
// fill in with a safe default.
func ValidateConnectionConfig(cfg ConnectionConfig) error {
	if strings.TrimSpace(cfg.DeviceAddr) == "" {
		return fmt.Errorf("connection config missing device_addr")
	}
	if cfg.ReceiveBufferSize < 0 {
		return fmt.Errorf("connection config receive_buffer_size must be >= 0")
	}
	if _, err := cfg.KeepAlive(); err != nil {
		return fmt.Errorf("connection config invalid: %w", err)
	}
	return nil
}
