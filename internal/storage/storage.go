package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/Adda-Baaj/placeholder-client/internal/domain"
)

// Package storage provides the local export journal.

// Store records comment exports written to disk.
type Store interface {
	Close() error
	RecordExport(rec domain.ExportRecord) error
	Exports() ([]domain.ExportRecord, error)
}

// Options controls retention characteristics for concrete store implementations.
type Options struct {
	ExportTTL       time.Duration
	CleanupInterval time.Duration
}

// Backend names accepted by NewStore.
const (
	TypeNone  = "none"
	TypeBBolt = "bbolt"
)

const (
	defaultExportTTL       = 30 * 24 * time.Hour
	defaultCleanupInterval = 12 * time.Hour
)

// NewStore creates the configured storage backend.
func NewStore(typ, path string, opts Options) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	opts = normalizeOptions(opts)

	switch typ {
	case "", TypeNone, "disabled":
		return noopStore{}, nil
	case TypeBBolt:
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		return openBolt(path, opts)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

func normalizeOptions(opts Options) Options {
	if opts.ExportTTL <= 0 {
		opts.ExportTTL = defaultExportTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaultCleanupInterval
	}
	return opts
}

// ExportKey is the journal key for a user/post pair.
func ExportKey(userID string, postID int) string {
	return fmt.Sprintf("user-%s-post-%d", userID, postID)
}

type noopStore struct{}

func (noopStore) Close() error                            { return nil }
func (noopStore) RecordExport(domain.ExportRecord) error  { return nil }
func (noopStore) Exports() ([]domain.ExportRecord, error) { return nil, nil }
