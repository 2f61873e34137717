package service

import (
	"context"
	"errors"
	"strings"

	"github.com/yourname/calorietracker/internal"
	"github.com/yourname/calorietracker/internal/storage"
)

const (
	LoginModeLogin  = "login"
	LoginModeSignup = "signup"
)

type LoginRequest struct {
	Mode            string `json:"mode" validate:"omitempty,oneof=login signup"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password"`
	Name            string `json:"name" validate:"required_if=Mode signup"`
}

type ResetPasswordRequest struct {
	Email string `json:"email"`
}

type LoginResult struct {
	Mode         string                `json:"mode"`
	User         *internal.User        `json:"user"`
	Token        string                `json:"token"`
	Notification internal.Notification `json:"-"`
}

type LoginPage struct {
	Modes  []string              `json:"modes"`
	Notice internal.Notification `json:"notice"`
}

func DemoLoginPage() LoginPage {
	return LoginPage{
		Modes: []string{LoginModeLogin, LoginModeSignup},
		Notice: internal.Notification{
			Title:       "Demo Mode",
			Description: "Authentication is simulated; any credentials sign in as the demo user.",
		},
	}
}

// CheckPasswords is the only check signup adds over login.
func CheckPasswords(req *LoginRequest) error {
	if req.Mode == LoginModeSignup && req.Password != req.ConfirmPassword {
		return ErrPasswordMatch
	}
	return nil
}

func ValidateLoginRequest(req *LoginRequest) error {
	if req.Mode == "" {
		req.Mode = LoginModeLogin
	}
	if err := CheckPasswords(req); err != nil {
		return err
	}
	return validate.Struct(req)
}

// SimulateLogin accepts any valid credentials as the demo user holding token.
func SimulateLogin(req *LoginRequest, demo *internal.User) *LoginResult {
	u := *demo
	note := NoteWelcomeBack
	if req.Mode == LoginModeSignup {
		note = NoteAccountCreated
		if name := strings.TrimSpace(req.Name); name != "" {
			u.Name = name
		}
	}
	return &LoginResult{Mode: req.Mode, User: &u, Token: u.Token, Notification: note}
}

// Login runs the simulated sign-in. Signup stores the named user under the
// demo token; login returns the stored user for that token if there is one.
func Login(ctx context.Context, users storage.UserRepository, req *LoginRequest, demo *internal.User) (*LoginResult, error) {
	result := SimulateLogin(req, demo)
	if req.Mode == LoginModeSignup {
		if err := users.SaveUser(ctx, result.User); err != nil {
			return nil, err
		}
		return result, nil
	}
	u, err := users.GetUserByToken(ctx, demo.Token)
	switch {
	case err == nil:
		result.User = u
	case !errors.Is(err, storage.ErrNotFound):
		return nil, err
	}
	return result, nil
}

func ValidateResetPassword(req *ResetPasswordRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return ErrEmailRequired
	}
	return nil
}
