package config

import "github.com/brindle/wingnrp/internal/discovery"

// FromDiscovery builds a ConnectionConfig from a discovery scan result,
// layering the device's advertised address onto the supplied defaults.
func FromDiscovery(found discovery.Result, defaults ConnectionConfig) ConnectionConfig {
	cfg := defaults
	cfg.DeviceAddr = found.Addr
	if cfg.Name == "" || cfg.Name == "wingnrp" {
		cfg.Name = found.Name
	}
	return cfg
}
