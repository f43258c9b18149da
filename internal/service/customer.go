package service

import (
	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/model"
	"github.com/shopspring/decimal"
)

// Account returns the account bound to the customer session.
func (s *Service) Account() (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.boundAccount()
}

func (s *Service) boundAccount() (model.Account, error) {
	if err := s.require(StateCustomer); err != nil {
		return model.Account{}, err
	}
	acc, ok := s.ledger.FindByID(s.session.accountID)
	if !ok {
		return model.Account{}, ledger.ErrAccountNotFound
	}
	return acc, nil
}

func (s *Service) CheckBalance() (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.boundAccount()
	if err != nil {
		return decimal.Zero, err
	}
	return acc.Balance, nil
}

// Deposit adds a positive amount and returns the new balance.
func (s *Service) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.require(StateCustomer); err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	err := s.commit("deposit", func(staged *ledger.Ledger) error {
		var err error
		balance, err = staged.Deposit(s.session.accountID, amount)
		return err
	})
	if err != nil {
		return decimal.Zero, err
	}

	s.logger().Info().
		Str("account_id", s.session.accountID).
		Str("amount", amount.String()).
		Msg("deposit")
	return balance, nil
}

// Withdraw removes a positive amount no greater than the balance and
// returns the new balance.
func (s *Service) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.require(StateCustomer); err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	err := s.commit("withdraw", func(staged *ledger.Ledger) error {
		var err error
		balance, err = staged.Withdraw(s.session.accountID, amount)
		return err
	})
	if err != nil {
		return decimal.Zero, err
	}

	s.logger().Info().
		Str("account_id", s.session.accountID).
		Str("amount", amount.String()).
		Msg("withdraw")
	return balance, nil
}

// Logout ends the customer session. Every mutation has already been
// persisted, so nothing is saved here.
func (s *Service) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.require(StateCustomer); err != nil {
		return err
	}

	s.logger().Info().Msg("customer logged out")
	s.end()
	return nil
}
