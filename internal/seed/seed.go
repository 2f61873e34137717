// Package seed holds the mock data every new user starts with.
package seed

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/yourname/calorietracker/internal"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var raw []byte

type Data struct {
	Profile     internal.ProfileData       `yaml:"profile"`
	Settings    internal.Settings          `yaml:"settings"`
	Account     internal.AccountInfo       `yaml:"account"`
	Today       internal.DailyStats        `yaml:"today"`
	Targets     internal.DailyTargets      `yaml:"targets"`
	FoodEntries []internal.FoodEntry       `yaml:"food_entries"`
	QuickAdd    []string                   `yaml:"quick_add"`
	Week        []internal.WeeklyDayRecord `yaml:"week"`
}

var (
	parsed   Data
	parseErr error
	once     sync.Once
)

// Parse decodes a seed document.
func Parse(b []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("seed: decode: %w", err)
	}
	return &d, nil
}

// Load returns a deep copy of the embedded seed, safe for the caller to mutate.
func Load() (*Data, error) {
	once.Do(func() {
		d, err := Parse(raw)
		if err != nil {
			parseErr = err
			return
		}
		parsed = *d
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return parsed.clone(), nil
}

// MustLoad is Load for callers that cannot recover from a broken embed.
func MustLoad() *Data {
	d, err := Load()
	if err != nil {
		panic(err)
	}
	return d
}

func (d Data) clone() *Data {
	c := d
	c.Today.Meals = append([]internal.MealSummary(nil), d.Today.Meals...)
	c.FoodEntries = append([]internal.FoodEntry(nil), d.FoodEntries...)
	c.QuickAdd = append([]string(nil), d.QuickAdd...)
	c.Week = append([]internal.WeeklyDayRecord(nil), d.Week...)
	return &c
}
