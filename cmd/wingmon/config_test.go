package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brindle/wingnrp/internal/testutil/testlog"
)

func TestResolveConnectionConfigFromFile(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "connection.toml")
	content := `
name = "console"
device_addr = "10.0.0.5:2222"
keep_alive_period = "7s"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := resolveConnectionConfig(path, "")
	if err != nil {
		t.Fatalf("resolveConnectionConfig: %v", err)
	}
	if cfg.DeviceAddr != "10.0.0.5:2222" {
		t.Fatalf("DeviceAddr = %q, want 10.0.0.5:2222", cfg.DeviceAddr)
	}
	if cfg.ReceiveBufferSize != 2048 {
		t.Fatalf("ReceiveBufferSize = %d, want default 2048", cfg.ReceiveBufferSize)
	}
}

func TestResolveConnectionConfigAddrOverride(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "connection.toml")
	content := `device_addr = "10.0.0.5:2222"`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := resolveConnectionConfig(path, "10.0.0.9:2222")
	if err != nil {
		t.Fatalf("resolveConnectionConfig: %v", err)
	}
	if cfg.DeviceAddr != "10.0.0.9:2222" {
		t.Fatalf("DeviceAddr = %q, want override 10.0.0.9:2222", cfg.DeviceAddr)
	}
}

func TestResolveConnectionConfigRequiresDeviceAddr(t *testing.T) {
	testlog.Start(t)
	if _, err := resolveConnectionConfig("", ""); err == nil {
		t.Fatal("resolveConnectionConfig with neither config nor --addr should fail validation")
	}
}
