package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/deppfellow/go-signup/internal/model"
)

// AccountStore persists accounts.
type AccountStore interface {
	Create(ctx context.Context, id uuid.UUID, name, email, password string) (*model.Account, error)
}

// PasswordHasher turns a plain password into its stored form.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// WelcomeEmailEnqueuer schedules the welcome email for a new account.
type WelcomeEmailEnqueuer interface {
	EnqueueWelcomeEmail(ctx context.Context, to, name string) error
}

// BcryptHasher hashes passwords with bcrypt at a fixed cost.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hashed), nil
}

// AccountService creates accounts. It is the signup handler's account creator.
type AccountService struct {
	store   AccountStore
	hasher  PasswordHasher
	welcome WelcomeEmailEnqueuer
	logger  *zerolog.Logger
}

// NewAccountService wires the service. welcome may be nil to skip the
// welcome email.
func NewAccountService(store AccountStore, hasher PasswordHasher, welcome WelcomeEmailEnqueuer, logger *zerolog.Logger) (*AccountService, error) {
	if store == nil || hasher == nil {
		return nil, errors.New("account service requires a store and a hasher")
	}

	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &AccountService{
		store:   store,
		hasher:  hasher,
		welcome: welcome,
		logger:  logger,
	}, nil
}

// Add hashes the password, stores the account and schedules the welcome
// email. A failed enqueue is logged; the account still exists.
func (s *AccountService) Add(ctx context.Context, input model.AddAccountInput) (*model.Account, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	account, err := s.store.Create(ctx, uuid.New(), name, email, hashed)
	if err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}

	s.logger.Info().
		Str("account_id", account.ID.String()).
		Msg("account created")

	if s.welcome != nil {
		if err := s.welcome.EnqueueWelcomeEmail(ctx, account.Email, account.Name); err != nil {
			s.logger.Error().
				Err(err).
				Str("account_id", account.ID.String()).
				Msg("failed to enqueue welcome email")
		}
	}

	return account, nil
}
