package service

import (
	"context"
	"time"

	"github.com/xolan/actionlog/internal/config"
	"github.com/xolan/actionlog/internal/export"
	"github.com/xolan/actionlog/internal/store"
)

// ExportService renders the collection and delivers it to the export
// location or the share target
type ExportService struct {
	store    *store.Store
	config   config.Config
	exporter *export.Exporter
	sharer   *export.Sharer
}

// NewExportService creates an ExportService for the configured locations
func NewExportService(st *store.Store, cfg config.Config) *ExportService {
	exporter := export.NewExporter(cfg.ExportDir)
	return &ExportService{
		store:    st,
		config:   cfg,
		exporter: exporter,
		sharer:   export.NewSharer(cfg.ShareURL, exporter),
	}
}

// Document renders the collection in format f, named for time now
func (s *ExportService) Document(f export.Format, now time.Time) (export.Document, error) {
	return export.Build(f, s.config.ExportPrefix, s.store.Entries(), now.In(s.config.Location()))
}

// Export writes the collection to the configured export location
func (s *ExportService) Export(ctx context.Context, f export.Format, now time.Time) (string, error) {
	return s.ExportTo(ctx, f, "", now)
}

// ExportTo writes the collection to location, or to the configured export
// location when location is empty
func (s *ExportService) ExportTo(ctx context.Context, f export.Format, location string, now time.Time) (string, error) {
	doc, err := s.Document(f, now)
	if err != nil {
		return "", err
	}
	return s.Deliver(ctx, doc, location)
}

// Deliver writes an already rendered document to location, or to the
// configured export location when location is empty
func (s *ExportService) Deliver(ctx context.Context, doc export.Document, location string) (string, error) {
	exporter := s.exporter
	if location != "" {
		exporter = export.NewExporter(location)
	}
	return exporter.Export(ctx, doc)
}

// Share sends the collection as CSV to the configured share target
func (s *ExportService) Share(ctx context.Context, now time.Time) export.ShareResult {
	return s.ShareTo(ctx, "", now)
}

// ShareTo sends the collection as CSV to target, or to the configured
// share target when target is empty. Falls back to a local export.
func (s *ExportService) ShareTo(ctx context.Context, target string, now time.Time) export.ShareResult {
	doc, err := s.Document(export.CSV, now)
	if err != nil {
		return export.ShareResult{Err: err}
	}
	return s.ShareDocument(ctx, doc, target)
}

// ShareDocument sends an already rendered document to target, or to the
// configured share target when target is empty
func (s *ExportService) ShareDocument(ctx context.Context, doc export.Document, target string) export.ShareResult {
	sharer := s.sharer
	if target != "" {
		sharer = export.NewSharer(target, s.exporter)
	}
	return sharer.Share(ctx, doc)
}

// ExportLocation returns the configured export location
func (s *ExportService) ExportLocation() string {
	return s.exporter.Location()
}

// ShareTarget returns the configured share target
func (s *ExportService) ShareTarget() string {
	return s.sharer.Target()
}
