// Package services implements the business logic of the server: account
// management, upload ingestion and dataset queries. Services receive their
// repositories at construction and hold no other state.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/datachart/internal/common"
	"github.com/dmitrijs2005/datachart/internal/server/auth"
	"github.com/dmitrijs2005/datachart/internal/server/config"
	"github.com/dmitrijs2005/datachart/internal/server/models"
	"github.com/dmitrijs2005/datachart/internal/server/repositories/users"
)

// Identity is the resolved subject of a valid access token.
type Identity struct {
	Email string
	Role  string
}

type UserService struct {
	repo                        users.Repository
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:                        repo,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates an account with a one-way password digest. The plaintext
// password is never persisted or logged. Fails with
// common.ErrorAlreadyExists when the email is taken, whatever the password
// or role.
func (s *UserService) Register(ctx context.Context, email, password, role string) (*models.User, error) {

	if role == "" {
		role = models.DefaultRole
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: digest,
		Role:         role,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and mints an access token with
// subject = email. A missing account and a wrong password both fail with the
// same common.ErrorUnauthorized so callers cannot probe for registered
// emails.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", fmt.Errorf("error loading user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}

	return token, nil
}

// Resolve maps a presented token to the identity it asserts. Fails with
// common.ErrInvalidToken when the token is malformed, mis-signed, expired,
// or its subject no longer maps to an account.
func (s *UserService) Resolve(ctx context.Context, token string) (*Identity, error) {

	email, err := auth.GetEmailFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	return &Identity{Email: user.Email, Role: user.Role}, nil
}
