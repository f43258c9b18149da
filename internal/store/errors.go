package store

import (
	"fmt"

	"github.com/hance08/teller/internal/ledger"
)

func corrupt(path string, err error) error {
	return fmt.Errorf("failed to load %s: %w: %w", path, ledger.ErrStoreCorrupt, err)
}

func unavailable(op, path string, err error) error {
	return fmt.Errorf("failed to %s %s: %w: %w", op, path, ledger.ErrStoreUnavailable, err)
}
