package service

import (
	"crypto/subtle"

	"github.com/google/uuid"
	"github.com/hance08/teller/internal/credential"
	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/model"
	"github.com/rs/zerolog"
)

type State int

const (
	StateUnauthenticated State = iota
	StateOperator
	StateCustomer
)

func (s State) String() string {
	switch s {
	case StateOperator:
		return "operator"
	case StateCustomer:
		return "customer"
	default:
		return "unauthenticated"
	}
}

type session struct {
	id        string
	state     State
	accountID string
}

func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.state
}

func (s *Service) logger() *zerolog.Logger {
	l := s.log.With().
		Str("session_id", s.session.id).
		Str("role", s.session.state.String()).
		Logger()
	return &l
}

func (s *Service) require(state State) error {
	if s.session.state != state {
		return ledger.ErrSessionRequired
	}
	return nil
}

func (s *Service) begin(state State, accountID string) {
	s.session = session{
		id:        uuid.NewString(),
		state:     state,
		accountID: accountID,
	}
}

func (s *Service) end() {
	s.session = session{}
}

// StaffLogin opens an operator session if secret matches the configured
// operator secret.
func (s *Service) StaffLogin(secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.require(StateUnauthenticated); err != nil {
		return err
	}
	if s.secret == "" {
		return ledger.ErrOperatorDisabled
	}
	if subtle.ConstantTimeCompare([]byte(secret), []byte(s.secret)) != 1 {
		s.log.Warn().Msg("staff login rejected")
		return ledger.ErrWrongOperatorSecret
	}

	s.begin(StateOperator, "")
	s.logger().Info().Msg("staff logged in")
	return nil
}

// CustomerLogin authenticates a card holder and binds the session to
// their account.
func (s *Service) CustomerLogin(card, pin string) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.require(StateUnauthenticated); err != nil {
		return model.Account{}, err
	}

	acc, ok := s.ledger.FindByCard(card)
	if !ok {
		s.log.Warn().Str("card", model.MaskCard(card)).Msg("customer login with unknown card")
		return model.Account{}, ledger.ErrCardNotFound
	}
	if !credential.Verify(pin, acc.PINVerifier) {
		s.log.Warn().Str("account_id", acc.ID).Msg("customer login with incorrect PIN")
		return model.Account{}, ledger.ErrIncorrectPin
	}

	s.begin(StateCustomer, acc.ID)
	s.logger().Info().Str("account_id", acc.ID).Msg("customer logged in")
	return acc, nil
}

// Exit persists the ledger and closes whatever session is open.
func (s *Service) Exit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.persist("exit")
	s.end()
	return err
}
