package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tweederent-backend/internal/apperr"
	"tweederent-backend/internal/domain"
	"tweederent-backend/internal/repository"
)

// LocalProvider implements the identity provider on the user collection
// itself: bcrypt password hashes on the user document and HS256 bearer
// tokens. Meant for development and tests, where no Firebase project is
// configured.
type LocalProvider struct {
	users  repository.UserRepository
	tokens *TokenManager
}

func NewLocalProvider(users repository.UserRepository, secret string, expiry time.Duration) *LocalProvider {
	return &LocalProvider{
		users:  users,
		tokens: NewTokenManager(secret, expiry),
	}
}

func (p *LocalProvider) VerifyToken(_ context.Context, token string) (string, error) {
	claims, err := p.tokens.Validate(token)
	if err != nil {
		return "", apperr.Unauthorized("invalid token")
	}
	return claims.UserID, nil
}

func (p *LocalProvider) SignUp(ctx context.Context, email, password string) (string, error) {
	if _, err := p.users.GetByEmail(ctx, email); err == nil {
		return "", apperr.Validation("email %s is already registered", email)
	} else if !apperr.Is(err, apperr.KindNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreateDate:   time.Now().UTC(),
	}
	if err := p.users.Create(ctx, user); err != nil {
		return "", err
	}
	return user.ID, nil
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := p.users.GetByEmail(ctx, email)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return "", apperr.Unauthorized("invalid credentials")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperr.Unauthorized("invalid credentials")
	}

	return p.tokens.Generate(user.ID, user.Email)
}

func (p *LocalProvider) SignOut(_ context.Context, _ string) error {
	// Tokens are stateless; sign-out is client-side discard.
	return nil
}

func (p *LocalProvider) SendPasswordReset(ctx context.Context, email string) (string, error) {
	if _, err := p.users.GetByEmail(ctx, email); err != nil {
		return "", err
	}
	// A short-lived token stands in for the emailed reset link.
	token, err := NewTokenManager(string(p.tokens.secret), 15*time.Minute).Generate(email, email)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("/reset-password?token=%s", token), nil
}
