package service

import (
	"context"
	"errors"

	"github.com/yourname/calorietracker/internal"
	"github.com/yourname/calorietracker/internal/storage"
)

const AppVersion = "1.0.0"

type SettingsRequest struct {
	Units         string `json:"units" validate:"required,oneof=metric imperial"`
	Notifications bool   `json:"notifications"`
	WeeklyReports bool   `json:"weekly_reports"`
	DarkMode      bool   `json:"dark_mode"`
	Language      string `json:"language" validate:"required,oneof=en es fr de"`
	Email         string `json:"email" validate:"required,email"`
	Name          string `json:"name" validate:"required,max=100"`
}

type SettingsView struct {
	Settings internal.Settings    `json:"settings"`
	Account  internal.AccountInfo `json:"account"`
	Version  string               `json:"version"`
}

func ValidateSettingsRequest(req *SettingsRequest) error {
	return validate.Struct(req)
}

func GetSettings(ctx context.Context, repo storage.SettingsRepository, user *internal.User, defSettings internal.Settings, defAccount internal.AccountInfo) (*SettingsView, error) {
	s, err := repo.GetSettings(ctx, user.ID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		s = &defSettings
	case err != nil:
		return nil, err
	}
	a, err := repo.GetAccount(ctx, user.ID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		a = &defAccount
	case err != nil:
		return nil, err
	}
	return &SettingsView{Settings: *s, Account: *a, Version: AppVersion}, nil
}

func SaveSettings(ctx context.Context, repo storage.SettingsRepository, user *internal.User, req *SettingsRequest) (*SettingsView, error) {
	s := &internal.Settings{
		Units:         req.Units,
		Notifications: req.Notifications,
		WeeklyReports: req.WeeklyReports,
		DarkMode:      req.DarkMode,
		Language:      req.Language,
	}
	a := &internal.AccountInfo{Email: req.Email, Name: req.Name}
	if err := repo.SaveSettings(ctx, user.ID, s); err != nil {
		return nil, err
	}
	if err := repo.SaveAccount(ctx, user.ID, a); err != nil {
		return nil, err
	}
	return &SettingsView{Settings: *s, Account: *a, Version: AppVersion}, nil
}
