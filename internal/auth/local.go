package auth

import (
	"context"
	"errors"

	"github.com/yourname/calorietracker/internal"
	"github.com/yourname/calorietracker/internal/storage"
)

var ErrInvalidToken = errors.New("invalid token")

// LocalAuthProvider accepts tokens of stored users and the configured demo token.
type LocalAuthProvider struct {
	Token  string
	users  storage.UserRepository
	logger internal.Logger
}

func (a *LocalAuthProvider) ValidateTokenLocal(ctx context.Context, token string) (*internal.User, error) {
	if a.users != nil {
		u, err := a.users.GetUserByToken(ctx, token)
		if err == nil {
			return u, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			a.logger.Errorf("user lookup failed: %v", err)
			return nil, err
		}
	}
	if token == a.Token {
		return DemoUser(a.Token), nil
	}
	a.logger.Warnf("invalid token presented")
	return nil, ErrInvalidToken
}

func (a *LocalAuthProvider) ValidateTokenRemote(ctx context.Context, token string) (*internal.User, error) {
	a.logger.Warnf("ValidateTokenRemote not implemented in LocalAuthProvider")
	return nil, errors.New("not implemented in LocalAuthProvider")
}

// NewLocalAuthProvider checks users first when non-nil, then the demo token.
func NewLocalAuthProvider(token string, users storage.UserRepository, logger internal.Logger) *LocalAuthProvider {
	return &LocalAuthProvider{Token: token, users: users, logger: logger}
}
