package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ferrors "github.com/vango-dev/forms/internal/errors"
	"github.com/vango-dev/forms/pkg/form"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Preview.Port != DefaultPort {
		t.Errorf("Preview.Port = %d, want %d", cfg.Preview.Port, DefaultPort)
	}
	if cfg.Preview.Host != DefaultHost {
		t.Errorf("Preview.Host = %q, want %q", cfg.Preview.Host, DefaultHost)
	}
	if cfg.Definition != DefaultDefinition {
		t.Errorf("Definition = %q, want %q", cfg.Definition, DefaultDefinition)
	}
	if !cfg.Preview.Watch {
		t.Error("Preview.Watch should default to true")
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	// Test loading non-existent config
	_, err := Load(tmpDir)
	if err == nil {
		t.Error("Expected error for missing config")
	}

	configJSON := `{
  "definition": "forms/signup.yaml",
  "preview": {
    "port": 9090,
    "host": "0.0.0.0"
  },
  "publish": {
    "bucket": "forms",
    "region": "eu-west-1",
    "prefix": "snapshots/"
  },
  "classes": {
    "invalid": "is-invalid"
  }
}
`
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Preview.Port != 9090 {
		t.Errorf("Preview.Port = %d, want %d", cfg.Preview.Port, 9090)
	}
	if cfg.Preview.Host != "0.0.0.0" {
		t.Errorf("Preview.Host = %q, want %q", cfg.Preview.Host, "0.0.0.0")
	}
	if cfg.Publish.Bucket != "forms" || cfg.Publish.Prefix != "snapshots/" {
		t.Errorf("Publish = %+v", cfg.Publish)
	}
	if got, want := cfg.DefinitionPath(), filepath.Join(tmpDir, "forms", "signup.yaml"); got != want {
		t.Errorf("DefinitionPath = %q, want %q", got, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate error: %v", err)
	}
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	if err := os.WriteFile(configPath, []byte("not valid json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(configPath)
	if err == nil {
		t.Fatal("Expected error for invalid JSON")
	}
	if !strings.Contains(err.Error(), "F040") {
		t.Errorf("Expected F040 error, got: %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte(`{"preview":{"port":9090},"publish":{"region":"us-east-1"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("FORMKIT_PORT", "7070")
	t.Setenv("FORMKIT_SECRET", "s3cret")
	t.Setenv("FORMKIT_BUCKET", "env-bucket")

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if cfg.Preview.Port != 7070 {
		t.Errorf("Preview.Port = %d, want 7070", cfg.Preview.Port)
	}
	if cfg.Preview.Secret != "s3cret" {
		t.Errorf("Preview.Secret = %q", cfg.Preview.Secret)
	}
	if cfg.Publish.Bucket != "env-bucket" {
		t.Errorf("Publish.Bucket = %q", cfg.Publish.Bucket)
	}
	if cfg.Publish.Region != "us-east-1" {
		t.Errorf("unset variable overwrote Publish.Region: %q", cfg.Publish.Region)
	}

	t.Setenv("FORMKIT_PORT", "not-a-number")
	_, err = LoadFile(configPath)
	if !errors.Is(err, ferrors.New("F041")) {
		t.Errorf("bad FORMKIT_PORT error = %v, want F041", err)
	}
}

func TestSave(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	cfg := New()
	cfg.Preview.Port = 9000
	cfg.Classes.Error = "help-block"

	// Save should fail without configPath set
	if err := cfg.Save(); err == nil {
		t.Error("Expected error when saving without path")
	}

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}

	loaded, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Preview.Port != 9000 {
		t.Errorf("Preview.Port = %d, want %d", loaded.Preview.Port, 9000)
	}
	if loaded.Classes.Error != "help-block" {
		t.Errorf("Classes.Error = %q", loaded.Classes.Error)
	}

	loaded.Preview.Port = 9001
	if err := loaded.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	reloaded, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if reloaded.Preview.Port != 9001 {
		t.Errorf("Preview.Port = %d, want %d", reloaded.Preview.Port, 9001)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"negative port", func(c *Config) { c.Preview.Port = -1 }, true},
		{"port too large", func(c *Config) { c.Preview.Port = 70000 }, true},
		{"bucket without region", func(c *Config) { c.Publish.Bucket = "b" }, true},
		{"bucket with endpoint", func(c *Config) {
			c.Publish.Bucket = "b"
			c.Publish.Endpoint = "http://localhost:9000"
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPreviewAddress(t *testing.T) {
	cfg := New()
	cfg.Preview.Port = 8081
	cfg.Preview.Host = "0.0.0.0"

	if addr := cfg.PreviewAddress(); addr != "0.0.0.0:8081" {
		t.Errorf("PreviewAddress = %q, want %q", addr, "0.0.0.0:8081")
	}
}

func TestPaths(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := New()
	if err := cfg.SaveTo(filepath.Join(tmpDir, ConfigFileName)); err != nil {
		t.Fatal(err)
	}

	if got := cfg.OutputPath(); got != filepath.Join(tmpDir, "dist") {
		t.Errorf("OutputPath = %q, want %q", got, filepath.Join(tmpDir, "dist"))
	}

	cfg.Publish.Output = "/var/forms"
	if got := cfg.OutputPath(); got != "/var/forms" {
		t.Errorf("absolute OutputPath = %q", got)
	}
}

func TestFormClasses(t *testing.T) {
	cfg := New()
	cfg.Classes.Invalid = "is-invalid"

	got := cfg.FormClasses()
	want := form.DefaultClasses()
	want.Invalid = "is-invalid"
	if got != want {
		t.Errorf("FormClasses = %+v, want %+v", got, want)
	}
}

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()

	if Exists(tmpDir) {
		t.Error("Exists should be false for empty dir")
	}
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if !Exists(tmpDir) {
		t.Error("Exists should be true after creating config")
	}
}

func TestFindProjectRoot(t *testing.T) {
	tmpDir := t.TempDir()
	nestedDir := filepath.Join(tmpDir, "a", "b", "c")
	if err := os.MkdirAll(nestedDir, 0755); err != nil {
		t.Fatal(err)
	}

	if _, err := FindProjectRoot(nestedDir); err == nil {
		t.Error("FindProjectRoot should fail when no config exists")
	}

	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, start := range []string{nestedDir, filepath.Join(tmpDir, "a")} {
		root, err := FindProjectRoot(start)
		if err != nil {
			t.Fatalf("FindProjectRoot error: %v", err)
		}
		if root != tmpDir {
			t.Errorf("FindProjectRoot(%q) = %q, want %q", start, root, tmpDir)
		}
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Preview.Port != DefaultPort {
		t.Errorf("Preview.Port = %d, want %d", cfg.Preview.Port, DefaultPort)
	}
	if cfg.Preview.Host != DefaultHost {
		t.Errorf("Preview.Host = %q", cfg.Preview.Host)
	}
	if cfg.Publish.Output != DefaultOutput {
		t.Errorf("Publish.Output = %q", cfg.Publish.Output)
	}
	if cfg.Definition != DefaultDefinition {
		t.Errorf("Definition = %q", cfg.Definition)
	}
}
