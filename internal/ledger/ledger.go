// Package ledger holds the in-memory account store and enforces its
// invariants: unique account ids, unique card numbers, credentials bound
// all at once, and balances that never go negative.
package ledger

import (
	"math/big"
	"strings"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
	"github.com/shopspring/decimal"
)

// Ledger is the ordered collection of accounts. It is not safe for
// concurrent use; callers serialise access.
type Ledger struct {
	accounts []*model.Account
	byID     map[string]*model.Account
	byCard   map[string]*model.Account
}

func New() *Ledger {
	return &Ledger{
		byID:   make(map[string]*model.Account),
		byCard: make(map[string]*model.Account),
	}
}

func (l *Ledger) Len() int {
	return len(l.accounts)
}

// Accounts returns copies of all accounts in insertion order.
func (l *Ledger) Accounts() []model.Account {
	out := make([]model.Account, 0, len(l.accounts))
	for _, a := range l.accounts {
		out = append(out, *a)
	}
	return out
}

// Clone returns a deep copy that can be mutated without touching l.
func (l *Ledger) Clone() *Ledger {
	c := New()
	c.accounts = make([]*model.Account, 0, len(l.accounts))
	for _, a := range l.accounts {
		cp := *a
		c.add(&cp)
	}
	return c
}

// AllocateID returns the next ACC<n> identifier, one past the highest
// numeric suffix currently in the ledger. Ids outside the scheme are ignored.
// Suffixes are compared as arbitrary-precision integers so an oversized id
// in a loaded store can't wrap the counter.
func (l *Ledger) AllocateID() string {
	highest := new(big.Int)
	for _, a := range l.accounts {
		suffix, ok := strings.CutPrefix(a.ID, constants.AccountIDPrefix)
		if !ok || !isDigits(suffix) {
			continue
		}
		n, ok := new(big.Int).SetString(suffix, 10)
		if ok && n.Cmp(highest) > 0 {
			highest = n
		}
	}
	return constants.AccountIDPrefix + new(big.Int).Add(highest, big.NewInt(1)).String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Insert adds a new account after checking every ledger invariant against it.
func (l *Ledger) Insert(a model.Account) error {
	if a.ID == "" {
		return ErrInvalidAccountID
	}
	if _, exists := l.byID[a.ID]; exists {
		return ErrDuplicateID
	}
	if (a.CardNumber == "") != (a.PINVerifier == "") {
		return ErrCredentialMismatch
	}
	if a.HasCard() {
		if _, bound := l.byCard[a.CardNumber]; bound {
			return ErrCardAlreadyBound
		}
	}
	if a.Balance.IsNegative() {
		return ErrInvalidAmount
	}

	cp := a
	l.add(&cp)
	return nil
}

func (l *Ledger) add(a *model.Account) {
	l.accounts = append(l.accounts, a)
	l.byID[a.ID] = a
	if a.HasCard() {
		l.byCard[a.CardNumber] = a
	}
}

func (l *Ledger) FindByID(id string) (model.Account, bool) {
	a, ok := l.byID[id]
	if !ok {
		return model.Account{}, false
	}
	return *a, true
}

func (l *Ledger) FindByCard(card string) (model.Account, bool) {
	if card == "" {
		return model.Account{}, false
	}
	a, ok := l.byCard[card]
	if !ok {
		return model.Account{}, false
	}
	return *a, true
}

// BindCredential sets the card number and PIN verifier of an account.
// Both fields are written together or not at all.
func (l *Ledger) BindCredential(id, card, verifier string) error {
	a, ok := l.byID[id]
	if !ok {
		return ErrAccountNotFound
	}
	if card == "" || verifier == "" {
		return ErrCredentialMismatch
	}
	if holder, bound := l.byCard[card]; bound && holder.ID != id {
		return ErrCardAlreadyBound
	}
	if a.HasCard() {
		return ErrCredentialAlreadySet
	}

	a.CardNumber = card
	a.PINVerifier = verifier
	l.byCard[card] = a
	return nil
}

// AdjustBalance applies delta and returns the new balance. It refuses any
// delta that would take the balance below zero.
func (l *Ledger) AdjustBalance(id string, delta decimal.Decimal) (decimal.Decimal, error) {
	a, ok := l.byID[id]
	if !ok {
		return decimal.Zero, ErrAccountNotFound
	}

	next := a.Balance.Add(delta)
	if next.IsNegative() {
		return a.Balance, ErrInsufficientFunds
	}

	a.Balance = next
	return next, nil
}

func (l *Ledger) Deposit(id string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return l.AdjustBalance(id, amount)
}

func (l *Ledger) Withdraw(id string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return l.AdjustBalance(id, amount.Neg())
}
