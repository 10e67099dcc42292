package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromArgs(t *testing.T) {
	cfg, err := FromArgs([]string{"stats.example.com", "myapp", "/", "eth0"})
	if err != nil {
		t.Fatalf("FromArgs() error: %v", err)
	}
	if cfg.Destination != "stats.example.com" {
		t.Errorf("Destination = %q", cfg.Destination)
	}
	if cfg.Namespace != "myapp" {
		t.Errorf("Namespace = %q", cfg.Namespace)
	}
	if cfg.Filesystem != "/" {
		t.Errorf("Filesystem = %q", cfg.Filesystem)
	}
	if cfg.Interface != "eth0" {
		t.Errorf("Interface = %q", cfg.Interface)
	}
}

func TestFromArgsWrongCount(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"stats.example.com"},
		{"stats.example.com", "myapp", "/"},
		{"stats.example.com", "myapp", "/", "eth0", "extra"},
	} {
		if _, err := FromArgs(args); err == nil {
			t.Errorf("FromArgs(%d args) returned nil error", len(args))
		}
	}
}

func TestFromArgsEmptyValue(t *testing.T) {
	if _, err := FromArgs([]string{"stats.example.com", "", "/", "eth0"}); err == nil {
		t.Error("FromArgs() with empty namespace returned nil error")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uptimed.yaml")
	body := `destination: stats.example.com
namespace: myapp
filesystem: /var/lib/data
interface: eth0
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Filesystem != "/var/lib/data" {
		t.Errorf("Filesystem = %q, want /var/lib/data", cfg.Filesystem)
	}
	if cfg.Interface != "eth0" {
		t.Errorf("Interface = %q, want eth0", cfg.Interface)
	}
}

func TestLoadMissingField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uptimed.yaml")
	body := `destination: stats.example.com
namespace: myapp
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with missing fields returned nil error")
	}
}

func TestLoadBadFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of missing file returned nil error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed file returned nil error")
	}
}
