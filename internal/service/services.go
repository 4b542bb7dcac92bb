package service

import (
	"github.com/xolan/actionlog/internal/config"
	"github.com/xolan/actionlog/internal/logging"
	"github.com/xolan/actionlog/internal/storage"
)

// Services holds all service instances used by the application
type Services struct {
	Entry  *EntryService
	Export *ExportService
	Config *ConfigService

	kv storage.KV
}

// Options control how NewServices locates its configuration and storage
type Options struct {
	// ConfigPath overrides the config file location
	ConfigPath string
	// Ephemeral keeps all state in memory for the lifetime of the process
	Ephemeral bool
}

// NewServices loads the configuration, opens the configured storage
// backend and restores the entry collection
func NewServices(opts Options) (*Services, error) {
	configPath := opts.ConfigPath
	if configPath == "" {
		p, err := config.GetConfigPath()
		if err != nil {
			return nil, err
		}
		configPath = p
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	var kv storage.KV
	if opts.Ephemeral {
		kv = storage.NewMemoryKV()
	} else {
		kv, err = storage.Open(cfg.StorageBackend, cfg.DataDir)
		if err != nil {
			return nil, err
		}
	}
	logging.Debugf("services: config=%s backend=%s ephemeral=%v", configPath, cfg.StorageBackend, opts.Ephemeral)

	return NewServicesWithKV(kv, configPath, cfg), nil
}

// NewServicesWithKV creates a new Services instance on an already opened
// store (useful for testing)
func NewServicesWithKV(kv storage.KV, configPath string, cfg config.Config) *Services {
	entryService := NewEntryService(kv, cfg)
	exportService := NewExportService(entryService.Store(), cfg)
	configService := NewConfigService(configPath, cfg)

	return &Services{
		Entry:  entryService,
		Export: exportService,
		Config: configService,
		kv:     kv,
	}
}

// Close releases the storage backend
func (s *Services) Close() error {
	if s == nil || s.kv == nil {
		return nil
	}
	err := s.kv.Close()
	s.kv = nil
	return err
}
