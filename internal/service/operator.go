package service

import (
	"github.com/hance08/teller/internal/credential"
	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/validation"
	"github.com/shopspring/decimal"
)

// CreateAccount opens a new account without a card and returns its id.
// The owner name is free text and is stored as given.
func (s *Service) CreateAccount(ownerName string, initialBalance decimal.Decimal) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.require(StateOperator); err != nil {
		return "", err
	}
	if initialBalance.IsNegative() {
		return "", ledger.ErrInvalidAmount
	}

	var id string
	err := s.commit("create account", func(staged *ledger.Ledger) error {
		id = staged.AllocateID()
		return staged.Insert(model.Account{
			ID:        id,
			OwnerName: ownerName,
			Balance:   initialBalance,
		})
	})
	if err != nil {
		return "", err
	}

	s.logger().Info().
		Str("account_id", id).
		Str("initial_balance", initialBalance.String()).
		Msg("account created")
	return id, nil
}

// RegisterCard binds a card number and PIN to an account that has none.
func (s *Service) RegisterCard(accountID, card, pin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.require(StateOperator); err != nil {
		return err
	}
	if _, ok := s.ledger.FindByID(accountID); !ok {
		return ledger.ErrAccountNotFound
	}
	if err := validation.ValidateCardNumber(card); err != nil {
		return err
	}
	if err := validation.ValidatePIN(pin); err != nil {
		return err
	}

	err := s.commit("register card", func(staged *ledger.Ledger) error {
		return staged.BindCredential(accountID, card, credential.Hash(pin))
	})
	if err != nil {
		return err
	}

	s.logger().Info().
		Str("account_id", accountID).
		Str("card", model.MaskCard(card)).
		Msg("card registered")
	return nil
}

// ListAccounts returns every account in creation order.
func (s *Service) ListAccounts() ([]model.AccountSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.require(StateOperator); err != nil {
		return nil, err
	}

	accounts := s.ledger.Accounts()
	out := make([]model.AccountSummary, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a.Summary())
	}
	return out, nil
}

// Back persists the ledger and leaves the operator session.
func (s *Service) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.require(StateOperator); err != nil {
		return err
	}

	err := s.persist("back")
	s.logger().Info().Msg("staff logged out")
	s.end()
	return err
}
