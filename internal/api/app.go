package api

import (
	"github.com/yourname/calorietracker/internal"
	"github.com/yourname/calorietracker/internal/seed"
	"github.com/yourname/calorietracker/internal/storage"
)

type App interface {
	Logger() internal.Logger
	FoodRepo() storage.FoodEntryRepository
	ProfileRepo() storage.ProfileRepository
	SettingsRepo() storage.SettingsRepository
	UserRepo() storage.UserRepository
	Seed() *seed.Data
}

type app struct {
	logger internal.Logger
	repos  storage.Repositories
	seed   *seed.Data
}

func NewApp(logger internal.Logger, repos storage.Repositories, data *seed.Data) App {
	return &app{logger: logger, repos: repos, seed: data}
}

func (a *app) Logger() internal.Logger                  { return a.logger }
func (a *app) FoodRepo() storage.FoodEntryRepository    { return a.repos }
func (a *app) ProfileRepo() storage.ProfileRepository   { return a.repos }
func (a *app) SettingsRepo() storage.SettingsRepository { return a.repos }
func (a *app) UserRepo() storage.UserRepository         { return a.repos }
func (a *app) Seed() *seed.Data                         { return a.seed }
