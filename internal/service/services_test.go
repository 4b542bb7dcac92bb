package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xolan/actionlog/internal/config"
	"github.com/xolan/actionlog/internal/storage"
)

func newTestServices(t *testing.T) (*Services, *storage.MemoryKV) {
	t.Helper()
	kv := storage.NewMemoryKV()
	cfg := config.DefaultConfig()
	cfg.ExportDir = t.TempDir()
	return NewServicesWithKV(kv, filepath.Join(t.TempDir(), "config.toml"), cfg), kv
}

func TestNewServicesWithKV(t *testing.T) {
	services, _ := newTestServices(t)

	if services.Entry == nil {
		t.Error("expected non-nil Entry service")
	}
	if services.Export == nil {
		t.Error("expected non-nil Export service")
	}
	if services.Config == nil {
		t.Error("expected non-nil Config service")
	}
	if err := services.Close(); err != nil {
		t.Errorf("Close() returned error: %v", err)
	}
	// Closing twice is harmless
	if err := services.Close(); err != nil {
		t.Errorf("second Close() returned error: %v", err)
	}
}

func TestNewServices_Ephemeral(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "missing.toml")

	services, err := NewServices(Options{ConfigPath: configPath, Ephemeral: true})
	if err != nil {
		t.Fatalf("NewServices() returned error: %v", err)
	}
	defer func() { _ = services.Close() }()

	if services.Entry.Count() != 0 {
		t.Errorf("expected empty collection, got %d", services.Entry.Count())
	}
	if services.Config.GetPath() != configPath {
		t.Errorf("GetPath() = %q, expected %q", services.Config.GetPath(), configPath)
	}
}

func TestNewServices_ConfiguredBackends(t *testing.T) {
	for _, backend := range []string{"file", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			tmpDir := t.TempDir()
			dataDir := filepath.Join(tmpDir, "data")
			configPath := filepath.Join(tmpDir, "config.toml")
			content := "storage_backend = \"" + backend + "\"\ndata_dir = \"" + filepath.ToSlash(dataDir) + "\"\n"
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			services, err := NewServices(Options{ConfigPath: configPath})
			if err != nil {
				t.Fatalf("NewServices() returned error: %v", err)
			}
			res, err := services.Entry.Create(AddInput{Input: entryInput("2024-01-01T10:00", "2024-01-01T10:30", "Write")}, testNow)
			if err != nil {
				t.Fatalf("Create() returned error: %v", err)
			}
			if !res.Outcome.Persisted {
				t.Fatalf("entry not persisted: %v", res.Outcome.Err)
			}
			if err := services.Close(); err != nil {
				t.Fatalf("Close() returned error: %v", err)
			}

			reopened, err := NewServices(Options{ConfigPath: configPath})
			if err != nil {
				t.Fatalf("reopening returned error: %v", err)
			}
			defer func() { _ = reopened.Close() }()

			if reopened.Entry.Count() != 1 {
				t.Errorf("expected 1 entry after reopen, got %d", reopened.Entry.Count())
			}
		})
	}
}

func TestNewServices_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte(`storage_backend = "tape"`), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := NewServices(Options{ConfigPath: configPath}); err == nil {
		t.Error("expected error for invalid config")
	}
}
