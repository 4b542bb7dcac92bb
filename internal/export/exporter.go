package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/xolan/actionlog/internal/logging"
)

// ErrShareUnavailable is reported when a document could not be shared and
// was exported locally instead
var ErrShareUnavailable = errors.New("share unavailable")

// Exporter writes documents to a directory or storage URL
type Exporter struct {
	fs       afs.Service
	location string
}

// NewExporter creates an Exporter writing into location, which may be a
// local path (relative or absolute) or any URL supported by afs.
// An empty location means the current directory.
func NewExporter(location string) *Exporter {
	if location == "" {
		location = "."
	}
	return &Exporter{fs: afs.New(), location: location}
}

// Location returns the configured export location
func (e *Exporter) Location() string {
	return e.location
}

// Export writes doc into the export location and returns its URL
func (e *Exporter) Export(ctx context.Context, doc Document) (string, error) {
	return upload(ctx, e.fs, e.location, doc)
}

// ShareResult describes how a share request was fulfilled
type ShareResult struct {
	// Shared is true when the document reached the share target
	Shared bool
	// URL is where the document was written (share target or fallback)
	URL string
	// Reason explains a fallback; it wraps ErrShareUnavailable
	Reason error
	// Err is set only when the fallback export also failed
	Err error
}

// Sharer delivers documents to a share target, falling back to a local export
type Sharer struct {
	fs       afs.Service
	target   string
	fallback *Exporter
}

// NewSharer creates a Sharer. An empty target means sharing is unavailable
// and every request goes straight to the fallback exporter.
func NewSharer(target string, fallback *Exporter) *Sharer {
	return &Sharer{fs: afs.New(), target: target, fallback: fallback}
}

// Target returns the configured share target
func (s *Sharer) Target() string {
	return s.target
}

// Share uploads doc to the share target. If there is no target, the upload
// fails or ctx is cancelled before it completes, the document is exported
// through the fallback exporter instead so the user always gets a result.
func (s *Sharer) Share(ctx context.Context, doc Document) ShareResult {
	var reason error
	if s.target == "" {
		reason = fmt.Errorf("%w: no share target configured", ErrShareUnavailable)
	} else {
		u, err := upload(ctx, s.fs, s.target, doc)
		if err == nil {
			return ShareResult{Shared: true, URL: u}
		}
		reason = fmt.Errorf("%w: %v", ErrShareUnavailable, err)
	}
	logging.Debugf("share: %v; falling back to export", reason)

	// The fallback must not inherit a cancelled share context
	u, err := s.fallback.Export(context.WithoutCancel(ctx), doc)
	return ShareResult{URL: u, Reason: reason, Err: err}
}

func upload(ctx context.Context, fs afs.Service, location string, doc Document) (string, error) {
	base, err := normalizeLocation(location)
	if err != nil {
		return "", err
	}
	target := url.Join(base, doc.Name)
	if err := fs.Upload(ctx, target, file.DefaultFileOsMode, bytes.NewReader(doc.Data)); err != nil {
		return "", fmt.Errorf("writing %s: %w", target, err)
	}
	logging.Debugf("export: wrote %d bytes to %s", len(doc.Data), target)
	return target, nil
}

// normalizeLocation turns scheme-less paths into file URLs
func normalizeLocation(location string) (string, error) {
	norm := location
	if url.Scheme(norm, "") == "" && url.IsRelative(norm) {
		abs, err := filepath.Abs(norm)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path for %s: %w", location, err)
		}
		norm = abs
	}
	if url.Scheme(norm, "") == "" && !url.IsRelative(norm) {
		norm = url.ToFileURL(norm)
	}
	return norm, nil
}
