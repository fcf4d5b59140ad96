package config

import (
	"fmt"
	"os"
	"strings"
)

// Template returns the starter TOML document for the given config kind.
func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "connection":
		return connectionTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

// WriteTemplate writes the named template to path, refusing to clobber
// an existing file unless overwrite is set.
func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const connectionTemplate = `name = "console"
device_addr = "192.168.1.20:2222"
keep_alive_period = "7s"
receive_buffer_size = 2048
log_level = "info"
`
