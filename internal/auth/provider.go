package auth

import (
	"context"

	"github.com/yourname/calorietracker/internal"
)

type Provider interface {
	ValidateTokenLocal(ctx context.Context, token string) (*internal.User, error)
	ValidateTokenRemote(ctx context.Context, token string) (*internal.User, error)
}

// DemoUser is the single account every simulated sign-in resolves to.
func DemoUser(token string) *internal.User {
	return &internal.User{ID: "u1", Token: token, Name: "Demo User"}
}
