package storage

import (
	"context"
	"errors"

	"github.com/yourname/calorietracker/internal"
)

var ErrNotFound = errors.New("storage: not found")

type FoodEntryRepository interface {
	// SeedFoodEntries stores entries for userID only the first time it is
	// called for that user; later calls are no-ops even if the log is empty.
	SeedFoodEntries(ctx context.Context, userID string, entries []internal.FoodEntry) error
	SaveFoodEntry(ctx context.Context, entry *internal.FoodEntry) error
	ListFoodEntries(ctx context.Context, userID string) ([]internal.FoodEntry, error)
	DeleteFoodEntry(ctx context.Context, userID, id string) error
}

type ProfileRepository interface {
	SaveProfile(ctx context.Context, userID string, p *internal.ProfileData) error
	GetProfile(ctx context.Context, userID string) (*internal.ProfileData, error)
}

type SettingsRepository interface {
	SaveSettings(ctx context.Context, userID string, s *internal.Settings) error
	GetSettings(ctx context.Context, userID string) (*internal.Settings, error)
	SaveAccount(ctx context.Context, userID string, a *internal.AccountInfo) error
	GetAccount(ctx context.Context, userID string) (*internal.AccountInfo, error)
}

type UserRepository interface {
	SaveUser(ctx context.Context, u *internal.User) error
	GetUserByToken(ctx context.Context, token string) (*internal.User, error)
}

// Repositories bundles every backend concern; each backend implements all of it.
type Repositories interface {
	FoodEntryRepository
	ProfileRepository
	SettingsRepository
	UserRepository
	Close() error
}
