package service

import (
	"context"
	"errors"
	"time"

	"github.com/AlexanderSS88/adboard/internal/auth"
	"github.com/AlexanderSS88/adboard/internal/config"
	"github.com/AlexanderSS88/adboard/internal/domain"
	"github.com/AlexanderSS88/adboard/internal/repository"
	"github.com/google/uuid"
)

var (
	// ErrInvalidCredentials covers both an unknown name and a wrong
	// password. Callers must not tell the cases apart.
	ErrInvalidCredentials = errors.New("user or password is incorrect")
	// ErrInvalidToken covers a missing, unknown and expired token. The
	// guard deliberately does not reveal which.
	ErrInvalidToken = errors.New("incorrect token")
	ErrNotOwner     = errors.New("token incorrect")
)

type AuthService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	cfg       *config.Config
}

func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		cfg:       cfg,
	}
}

type LoginInput struct {
	Name     string
	Password string
}

// Login verifies the credentials and mints a fresh token. Existing tokens
// for the user stay valid; there is no per-user limit.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*domain.Token, error) {
	user, err := s.userRepo.GetByName(ctx, input.Name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token := &domain.Token{
		ID:      uuid.New(),
		UserID:  user.ID,
		Created: time.Now().UTC(),
	}

	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return nil, err
	}

	return token, nil
}

// Authenticate resolves a presented token id to its user. It rejects with
// ErrInvalidToken when the id is empty, unparsable, unknown or past its
// TTL; the single reason avoids leaking whether the token ever existed.
func (s *AuthService) Authenticate(ctx context.Context, tokenID string) (*domain.User, error) {
	if tokenID == "" {
		return nil, ErrInvalidToken
	}

	id, err := uuid.Parse(tokenID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	token, err := s.tokenRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	if time.Now().UTC().After(token.ExpiresAt(s.cfg.TokenTTL)) {
		return nil, ErrInvalidToken
	}

	return &token.User, nil
}

// CheckOwner enforces the ownership rule for destructive operations.
func (s *AuthService) CheckOwner(userID, ownerID uint) error {
	if userID != ownerID {
		return ErrNotOwner
	}
	return nil
}
