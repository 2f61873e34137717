package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/calorietracker/internal"
	"github.com/yourname/calorietracker/internal/storage"
)

func TestValidateLoginRequest(t *testing.T) {
	req := &LoginRequest{Email: "a@b.co", Password: "pw"}
	require.NoError(t, ValidateLoginRequest(req))
	assert.Equal(t, LoginModeLogin, req.Mode)

	mismatch := &LoginRequest{Mode: LoginModeSignup, Email: "a@b.co", Password: "pw", ConfirmPassword: "px", Name: "A"}
	assert.ErrorIs(t, ValidateLoginRequest(mismatch), ErrPasswordMatch)

	noName := &LoginRequest{Mode: LoginModeSignup, Email: "a@b.co", Password: "pw", ConfirmPassword: "pw"}
	assert.Error(t, ValidateLoginRequest(noName))

	assert.Error(t, ValidateLoginRequest(&LoginRequest{Email: "bad", Password: "pw"}))
	assert.Error(t, ValidateLoginRequest(&LoginRequest{Mode: "sso", Email: "a@b.co", Password: "pw"}))
}

func TestSimulateLogin(t *testing.T) {
	demo := &internal.User{ID: "u1", Token: "MOCK-TOKEN", Name: "Demo User"}

	r := SimulateLogin(&LoginRequest{Mode: LoginModeLogin}, demo)
	assert.Equal(t, "MOCK-TOKEN", r.Token)
	assert.Equal(t, "Demo User", r.User.Name)
	assert.Equal(t, NoteWelcomeBack, r.Notification)

	r = SimulateLogin(&LoginRequest{Mode: LoginModeSignup, Name: " Ann "}, demo)
	assert.Equal(t, "Ann", r.User.Name)
	assert.Equal(t, NoteAccountCreated, r.Notification)
	assert.Equal(t, "Demo User", demo.Name)
}

func TestValidateResetPassword(t *testing.T) {
	assert.ErrorIs(t, ValidateResetPassword(&ResetPasswordRequest{Email: "  "}), ErrEmailRequired)
	assert.NoError(t, ValidateResetPassword(&ResetPasswordRequest{Email: "a@b.co"}))
}

func TestNavItems(t *testing.T) {
	items := NavItems("/")
	require.Len(t, items, 5)
	assert.True(t, items[0].Active)
	for _, it := range items[1:] {
		assert.False(t, it.Active, it.Path)
	}

	items = NavItems("/history/chart")
	assert.False(t, items[0].Active)
	assert.True(t, items[3].Active)
	assert.Equal(t, "History", items[3].Label)
}

func TestLogin_PersistsSignup(t *testing.T) {
	ctx := context.Background()
	users := storage.NewMemoryStorage()
	demo := &internal.User{ID: "u1", Token: "MOCK-TOKEN", Name: "Demo User"}

	r, err := Login(ctx, users, &LoginRequest{Mode: LoginModeLogin}, demo)
	require.NoError(t, err)
	assert.Equal(t, "Demo User", r.User.Name)

	r, err = Login(ctx, users, &LoginRequest{Mode: LoginModeSignup, Name: "Ann"}, demo)
	require.NoError(t, err)
	assert.Equal(t, NoteAccountCreated, r.Notification)

	stored, err := users.GetUserByToken(ctx, "MOCK-TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "Ann", stored.Name)

	r, err = Login(ctx, users, &LoginRequest{Mode: LoginModeLogin}, demo)
	require.NoError(t, err)
	assert.Equal(t, "Ann", r.User.Name)
	assert.Equal(t, NoteWelcomeBack, r.Notification)
}
