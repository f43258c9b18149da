package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/ledger"
	sqlite "github.com/mattn/go-sqlite3"
)

// Load reads every account ordered by its stored position.
func (s *SQLiteStore) Load() (*ledger.Ledger, error) {
	rows, err := s.db.Query(`
        SELECT account_id, owner_name, balance, card_number, pin_verifier
        FROM accounts
        ORDER BY position
    `)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to query accounts")
		return ledger.New(), unavailable("query", s.path, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	records, err := s.scanRecords(rows)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to scan accounts")
		return ledger.New(), corrupt(s.path, err)
	}

	l, err := Snapshot{Accounts: records}.Ledger()
	if err != nil {
		s.log.Error().Err(err).Msg("store violates ledger invariants")
		return ledger.New(), corrupt(s.path, err)
	}

	s.log.Debug().Int("accounts", l.Len()).Msg("ledger loaded")
	return l, nil
}

// Save replaces the stored accounts with the ledger's in one transaction.
func (s *SQLiteStore) Save(l *ledger.Ledger) error {
	snap := NewSnapshot(l)

	err := s.ExecTx(func(tx *SQLiteStore) error {
		if _, err := tx.db.Exec(`DELETE FROM accounts`); err != nil {
			return fmt.Errorf("failed to clear accounts: %w", err)
		}

		stmt, err := tx.db.Prepare(`
            INSERT INTO accounts (position, account_id, owner_name, balance, card_number, pin_verifier)
            VALUES (?, ?, ?, ?, ?, ?)
        `)
		if err != nil {
			return fmt.Errorf("failed to prepare SQL : %w", err)
		}
		defer func() {
			_ = stmt.Close()
		}()

		for i, rec := range snap.Accounts {
			_, err := stmt.Exec(i, rec.AccountID, rec.OwnerName, rec.Balance.String(), rec.CardNumber, rec.PINVerifier)
			if err != nil {
				return fmt.Errorf("failed to insert account '%s': %w", rec.AccountID, mapConstraint(err))
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to save ledger")
		return unavailable("save", s.path, err)
	}

	s.log.Debug().Int("accounts", len(snap.Accounts)).Msg("ledger saved")
	return nil
}

func (s *SQLiteStore) scanRecords(rows *sql.Rows) ([]AccountRecord, error) {
	var records []AccountRecord
	for rows.Next() {
		var (
			rec      AccountRecord
			balance  string
			card     sql.NullString
			verifier sql.NullString
		)

		if err := rows.Scan(&rec.AccountID, &rec.OwnerName, &balance, &card, &verifier); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}

		rec.Balance = json.Number(balance)
		if card.Valid {
			rec.CardNumber = &card.String
		}
		if verifier.Valid {
			rec.PINVerifier = &verifier.String
		}

		records = append(records, rec)
	}

	return records, rows.Err()
}

func mapConstraint(err error) error {
	var sqliteErr sqlite.Error
	if !errors.As(err, &sqliteErr) || !errors.Is(sqliteErr.Code, sqlite.ErrConstraint) {
		return err
	}

	msg := sqliteErr.Error()
	switch {
	case strings.Contains(msg, "accounts.card_number"):
		return fmt.Errorf("%w: %w", ledger.ErrCardAlreadyBound, err)
	case strings.Contains(msg, "accounts.account_id"):
		return fmt.Errorf("%w: %w", ledger.ErrDuplicateID, err)
	default:
		return fmt.Errorf("%w: %w", ledger.ErrCredentialMismatch, err)
	}
}
