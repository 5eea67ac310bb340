// Package identity abstracts the identity provider the rental core
// authenticates against. The production implementation is Firebase
// Auth; a local JWT-based provider serves development and tests.
package identity

import "context"

type Provider interface {
	// VerifyToken validates a bearer token and returns the user id it
	// was issued for.
	VerifyToken(ctx context.Context, token string) (string, error)

	// SignUp registers an email/password account and returns the new
	// user id.
	SignUp(ctx context.Context, email, password string) (string, error)

	// SignIn exchanges credentials for a bearer token.
	SignIn(ctx context.Context, email, password string) (string, error)

	// SignOut invalidates the session behind the given token.
	SignOut(ctx context.Context, token string) error

	// SendPasswordReset starts a password reset flow for the account
	// and returns the reset link handed to the mail template.
	SendPasswordReset(ctx context.Context, email string) (string, error)
}
