// Package service provides the business logic layer for the actionlog application.
// It wraps the entry store, the exporters and the configuration,
// providing a clean API for both CLI and TUI frontends.
package service

import (
	"github.com/xolan/actionlog/internal/entry"
	"github.com/xolan/actionlog/internal/store"
)

// AddInput is the raw input for a new entry.
// Length, when non-zero and Stop is empty, derives Stop from Start.
type AddInput struct {
	entry.Input
	Length int
}

// ListResult contains the rendered entry collection
type ListResult struct {
	Rows  []store.DisplayRow
	Total int // Total length in minutes
}

// CreateResult reports the entry that was added and whether it was saved
type CreateResult struct {
	Entry   entry.Entry
	Outcome store.Outcome
}
