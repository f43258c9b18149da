package store

import "github.com/hance08/teller/internal/ledger"

// Repository is the persistence gateway for the ledger.
type Repository interface {
	// Load returns the persisted ledger. A missing store is created empty.
	// A malformed store yields an empty ledger together with an error.
	Load() (*ledger.Ledger, error)
	// Save writes a complete snapshot of l.
	Save(l *ledger.Ledger) error
	Path() string
	Close() error
}
