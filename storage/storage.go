// Package storage persists the tracker's records as opaque JSON blobs keyed by
// name. Callers own the encoding; a backend only moves bytes.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// Keys of the three records the tracker persists.
const (
	KeyTransactions = "expense_tracker_transactions"
	KeyCategories   = "expense_tracker_categories"
	KeySettings     = "expense_tracker_settings"
)

// ErrNotFound is returned by Load when nothing has been saved under a key.
var ErrNotFound = errors.New("storage: key not found")

// Backend is a synchronous key-value store.
type Backend interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	// SaveAll stores every record or, on error, none of them.
	SaveAll(ctx context.Context, records map[string][]byte) error
	Clear(ctx context.Context, key string) error
	Close() error
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Options selects and configures a backend.
type Options struct {
	Backend string
	Path    string
}

// Open returns the backend named by opts.Backend. An empty name means sqlite.
func Open(opts Options) (Backend, error) {
	switch opts.Backend {
	case "", BackendSQLite:
		if opts.Path == "" {
			return nil, errors.New("storage: sqlite backend requires a path")
		}
		return OpenSQLite(opts.Path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", opts.Backend)
	}
}
