package identity

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"tweederent-backend/internal/apperr"
	"tweederent-backend/internal/logger"
)

// FirebaseProvider verifies Firebase ID tokens and manages accounts
// through the Admin SDK. Password sign-in itself happens in the mobile
// client against Firebase directly; the backend only ever sees tokens.
type FirebaseProvider struct {
	client *fbauth.Client
}

func NewFirebaseProvider(ctx context.Context, projectID, credentialsFile string) (*FirebaseProvider, error) {
	conf := &firebase.Config{ProjectID: projectID}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth client: %w", err)
	}

	return &FirebaseProvider{client: client}, nil
}

func (p *FirebaseProvider) VerifyToken(ctx context.Context, token string) (string, error) {
	decoded, err := p.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", apperr.Unauthorized("invalid id token")
	}
	return decoded.UID, nil
}

func (p *FirebaseProvider) SignUp(ctx context.Context, email, password string) (string, error) {
	logger.ExternalServiceCall("firebase-auth", "create-user", "email", email)

	params := (&fbauth.UserToCreate{}).Email(email).Password(password)
	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return "", apperr.Storage("failed to create firebase user", err)
	}
	return record.UID, nil
}

func (p *FirebaseProvider) SignIn(ctx context.Context, email, password string) (string, error) {
	// The Admin SDK has no password grant; clients sign in against
	// Firebase directly and present the resulting ID token.
	return "", apperr.Validation("password sign-in is performed by the Firebase client SDK")
}

func (p *FirebaseProvider) SignOut(ctx context.Context, token string) error {
	decoded, err := p.client.VerifyIDToken(ctx, token)
	if err != nil {
		return apperr.Unauthorized("invalid id token")
	}
	if err := p.client.RevokeRefreshTokens(ctx, decoded.UID); err != nil {
		return apperr.Storage("failed to revoke refresh tokens", err)
	}
	return nil
}

func (p *FirebaseProvider) SendPasswordReset(ctx context.Context, email string) (string, error) {
	link, err := p.client.PasswordResetLink(ctx, email)
	if err != nil {
		return "", apperr.Storage("failed to generate password reset link", err)
	}
	return link, nil
}
