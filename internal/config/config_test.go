package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/brindle/wingnrp/internal/discovery"
	"github.com/brindle/wingnrp/internal/testutil/testlog"
)

func TestLoadConnectionConfigAppliesDefaults(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "connection.toml")
	if err := WriteTemplate(path, "connection", false); err != nil {
		t.Fatalf("WriteTemplate: %v", err)
	}

	cfg, err := LoadConnectionConfig(path)
	if err != nil {
		t.Fatalf("LoadConnectionConfig: %v", err)
	}
	if cfg.Name != "console" {
		t.Errorf("Name = %q, want console", cfg.Name)
	}
	if cfg.DeviceAddr != "192.168.1.20:2222" {
		t.Errorf("DeviceAddr = %q, want 192.168.1.20:2222", cfg.DeviceAddr)
	}

	d, err := cfg.KeepAlive()
	if err != nil || d != 7*time.Second {
		t.Errorf("KeepAlive() = %v, %v, want 7s, nil", d, err)
	}
}

func TestLoadConnectionConfigMissingDeviceAddr(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "connection.toml")
	if err := os.WriteFile(path, []byte("name = \"console\"\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := LoadConnectionConfig(path)
	if err == nil {
		t.Fatal("LoadConnectionConfig with no device_addr should fail validation")
	}
}

func TestKeepAliveRejectsUnparseableDuration(t *testing.T) {
	testlog.Start(t)
	cfg := ConnectionConfig{DeviceAddr: "x:2222", KeepAlivePeriod: "not-a-duration"}
	if _, err := cfg.KeepAlive(); err == nil {
		t.Fatal("KeepAlive() on a malformed duration should fail")
	}
}

func TestWriteTemplateRefusesToClobber(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "connection.toml")
	if err := WriteTemplate(path, "connection", false); err != nil {
		t.Fatalf("first WriteTemplate: %v", err)
	}
	if err := WriteTemplate(path, "connection", false); err == nil {
		t.Fatal("second WriteTemplate without overwrite should fail")
	}
	if err := WriteTemplate(path, "connection", true); err != nil {
		t.Fatalf("WriteTemplate with overwrite: %v", err)
	}
}

func TestTemplateUnknownKind(t *testing.T) {
	testlog.Start(t)
	if _, err := Template("bogus"); err == nil {
		t.Fatal("Template(\"bogus\") should fail")
	}
}

func TestFromDiscoveryFillsAddrAndDefaultName(t *testing.T) {
	testlog.Start(t)
	defaults := ConnectionConfig{Name: "wingnrp", ReceiveBufferSize: 4096}
	found := discovery.Result{Name: "Board", Addr: "10.0.0.5:2222"}

	cfg := FromDiscovery(found, defaults)
	if cfg.DeviceAddr != "10.0.0.5:2222" {
		t.Errorf("DeviceAddr = %q, want 10.0.0.5:2222", cfg.DeviceAddr)
	}
	if cfg.Name != "Board" {
		t.Errorf("Name = %q, want Board (default name replaced)", cfg.Name)
	}
	if cfg.ReceiveBufferSize != 4096 {
		t.Errorf("ReceiveBufferSize = %d, want 4096 (preserved from defaults)", cfg.ReceiveBufferSize)
	}
}

func TestFromDiscoveryPreservesExplicitName(t *testing.T) {
	testlog.Start(t)
	defaults := ConnectionConfig{Name: "my-console"}
	found := discovery.Result{Name: "Board", Addr: "10.0.0.5:2222"}

	cfg := FromDiscovery(found, defaults)
	if cfg.Name != "my-console" {
		t.Errorf("Name = %q, want my-console (explicit name preserved)", cfg.Name)
	}
}
