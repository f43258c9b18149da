package store

import (
	"encoding/json"
	"fmt"

	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/model"
	"github.com/shopspring/decimal"
)

// AccountRecord is the on-disk shape of an account. Field names are fixed
// for compatibility with existing stores.
type AccountRecord struct {
	AccountID   string      `json:"accountId"`
	OwnerName   string      `json:"ownerName"`
	Balance     json.Number `json:"balance"`
	CardNumber  *string     `json:"cardNumber"`
	PINVerifier *string     `json:"pinVerifier"`
}

// Snapshot is the whole record collection, in insertion order.
type Snapshot struct {
	Accounts []AccountRecord `json:"accounts"`
}

func toRecord(a model.Account) AccountRecord {
	rec := AccountRecord{
		AccountID: a.ID,
		OwnerName: a.OwnerName,
		Balance:   json.Number(a.Balance.String()),
	}
	if a.HasCard() {
		card, verifier := a.CardNumber, a.PINVerifier
		rec.CardNumber = &card
		rec.PINVerifier = &verifier
	}
	return rec
}

func (r AccountRecord) toAccount() (model.Account, error) {
	if r.Balance == "" {
		return model.Account{}, fmt.Errorf("account %s has no balance", r.AccountID)
	}
	balance, err := decimal.NewFromString(r.Balance.String())
	if err != nil {
		return model.Account{}, fmt.Errorf("account %s has invalid balance %q: %w", r.AccountID, r.Balance, err)
	}

	acc := model.Account{
		ID:        r.AccountID,
		OwnerName: r.OwnerName,
		Balance:   balance,
	}
	if r.CardNumber != nil {
		acc.CardNumber = *r.CardNumber
	}
	if r.PINVerifier != nil {
		acc.PINVerifier = *r.PINVerifier
	}
	return acc, nil
}

// NewSnapshot converts the ledger into its persisted form.
func NewSnapshot(l *ledger.Ledger) Snapshot {
	accounts := l.Accounts()
	snap := Snapshot{Accounts: make([]AccountRecord, 0, len(accounts))}
	for _, a := range accounts {
		snap.Accounts = append(snap.Accounts, toRecord(a))
	}
	return snap
}

// Ledger rebuilds a ledger from the snapshot, re-checking every invariant.
func (s Snapshot) Ledger() (*ledger.Ledger, error) {
	l := ledger.New()
	for i, rec := range s.Accounts {
		acc, err := rec.toAccount()
		if err != nil {
			return nil, err
		}
		if err := l.Insert(acc); err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, rec.AccountID, err)
		}
	}
	return l, nil
}
