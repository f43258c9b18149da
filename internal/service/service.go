// Package service implements the ledger operations behind an operator or
// customer session. Every mutation is applied to a staged copy of the
// ledger, persisted, and only then made live.
package service

import (
	"fmt"
	"sync"

	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/store"
	"github.com/rs/zerolog"
)

type Service struct {
	Config *config.Config

	mu      sync.Mutex
	repo    store.Repository
	ledger  *ledger.Ledger
	secret  string
	log     zerolog.Logger
	session session
}

func NewService(repo store.Repository, cfg *config.Config, logger zerolog.Logger) *Service {
	return &Service{
		Config: cfg,
		repo:   repo,
		ledger: ledger.New(),
		secret: cfg.Operator.Secret,
		log:    logger.With().Str("component", "service").Logger(),
	}
}

// Load replaces the live ledger with the persisted one. When the store is
// malformed the service keeps running on an empty ledger and the load
// error is returned for the caller to report.
func (s *Service) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.repo.Load()
	if l == nil {
		l = ledger.New()
	}
	s.ledger = l

	if err != nil {
		s.log.Warn().Err(err).Msg("starting with an empty ledger")
		return err
	}

	s.log.Info().Int("accounts", l.Len()).Msg("ledger ready")
	return nil
}

// AccountCount is available in any session state.
func (s *Service) AccountCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Len()
}

func (s *Service) StorePath() string {
	return s.repo.Path()
}

// commit runs fn against a clone of the live ledger and swaps the clone
// in once it has been saved. On any failure the live ledger is untouched.
func (s *Service) commit(op string, fn func(staged *ledger.Ledger) error) error {
	staged := s.ledger.Clone()
	if err := fn(staged); err != nil {
		return err
	}

	if err := s.repo.Save(staged); err != nil {
		s.logger().Error().Err(err).Str("op", op).Msg("save failed, change discarded")
		return fmt.Errorf("%s: %w: %w", op, ledger.ErrSaveFailed, err)
	}

	s.ledger = staged
	return nil
}

// persist saves the live ledger as is.
func (s *Service) persist(op string) error {
	if err := s.repo.Save(s.ledger); err != nil {
		s.logger().Error().Err(err).Str("op", op).Msg("save failed")
		return fmt.Errorf("%s: %w: %w", op, ledger.ErrSaveFailed, err)
	}
	return nil
}
