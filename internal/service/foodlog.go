package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yourname/calorietracker/internal"
	"github.com/yourname/calorietracker/internal/storage"
)

// MealFilterAll disables the meal filter.
const MealFilterAll = "all"

type FoodEntryRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Calories int    `json:"calories" validate:"gte=0"`
	Protein  int    `json:"protein" validate:"gte=0"`
	Carbs    int    `json:"carbs" validate:"gte=0"`
	Fats     int    `json:"fats" validate:"gte=0"`
	Serving  string `json:"serving" validate:"max=100"`
	Meal     string `json:"meal" validate:"required,oneof=breakfast lunch dinner snack"`
	Time     string `json:"time" validate:"omitempty,hhmm"`
}

type MacroTotals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
}

type FoodEntryView struct {
	internal.FoodEntry
	MealLabel string `json:"meal_label"`
	MealColor string `json:"meal_color"`
}

type FoodLogView struct {
	Search       string          `json:"search"`
	Meal         string          `json:"meal"`
	Entries      []FoodEntryView `json:"entries"`
	Count        int             `json:"count"`
	Totals       MacroTotals     `json:"totals"`
	QuickAdd     []string        `json:"quick_add"`
	EmptyMessage string          `json:"empty_message,omitempty"`
}

// FilterFoodEntries keeps entries whose name contains search (case-insensitive)
// and whose meal matches, or any meal when meal is "all".
func FilterFoodEntries(entries []internal.FoodEntry, search, meal string) []internal.FoodEntry {
	needle := strings.ToLower(search)
	out := make([]internal.FoodEntry, 0, len(entries))
	for _, e := range entries {
		if !strings.Contains(strings.ToLower(e.Name), needle) {
			continue
		}
		if meal != MealFilterAll && string(e.Meal) != meal {
			continue
		}
		out = append(out, e)
	}
	return out
}

func SumMacros(entries []internal.FoodEntry) MacroTotals {
	var t MacroTotals
	for _, e := range entries {
		t.Calories += e.Calories
		t.Protein += e.Protein
		t.Carbs += e.Carbs
		t.Fats += e.Fats
	}
	return t
}

// RemoveFoodEntry drops the entry with id, keeping the rest in order.
func RemoveFoodEntry(entries []internal.FoodEntry, id string) []internal.FoodEntry {
	out := make([]internal.FoodEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

func MealColor(meal internal.MealCategory) string {
	switch meal {
	case internal.MealBreakfast:
		return "yellow"
	case internal.MealLunch:
		return "blue"
	case internal.MealDinner:
		return "purple"
	case internal.MealSnack:
		return "green"
	default:
		return "gray"
	}
}

func MealLabel(meal internal.MealCategory) string {
	s := string(meal)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ValidMealFilter accepts "all" or one of the meal categories.
func ValidMealFilter(meal string) error {
	if meal == MealFilterAll {
		return nil
	}
	for _, m := range internal.Meals {
		if string(m) == meal {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownMeal, meal)
}

func ValidateFoodEntryRequest(req *FoodEntryRequest) error {
	return validate.Struct(req)
}

func BuildFoodLog(entries []internal.FoodEntry, search, meal string, quickAdd []string) (*FoodLogView, error) {
	if meal == "" {
		meal = MealFilterAll
	}
	if err := ValidMealFilter(meal); err != nil {
		return nil, err
	}
	filtered := FilterFoodEntries(entries, search, meal)
	views := make([]FoodEntryView, len(filtered))
	for i, e := range filtered {
		views[i] = FoodEntryView{FoodEntry: e, MealLabel: MealLabel(e.Meal), MealColor: MealColor(e.Meal)}
	}
	v := &FoodLogView{
		Search:   search,
		Meal:     meal,
		Entries:  views,
		Count:    len(views),
		Totals:   SumMacros(filtered),
		QuickAdd: quickAdd,
	}
	if len(views) == 0 {
		v.EmptyMessage = "No food entries found"
	}
	return v, nil
}

// ListFoodLog seeds the user's log on first use, then returns it.
func ListFoodLog(ctx context.Context, repo storage.FoodEntryRepository, user *internal.User, seedEntries []internal.FoodEntry) ([]internal.FoodEntry, error) {
	if err := repo.SeedFoodEntries(ctx, user.ID, seedEntries); err != nil {
		return nil, err
	}
	return repo.ListFoodEntries(ctx, user.ID)
}

func CreateFoodEntry(ctx context.Context, repo storage.FoodEntryRepository, user *internal.User, seedEntries []internal.FoodEntry, req *FoodEntryRequest, now time.Time) (*internal.FoodEntry, error) {
	if err := repo.SeedFoodEntries(ctx, user.ID, seedEntries); err != nil {
		return nil, err
	}
	t := req.Time
	if t == "" {
		t = now.Format("15:04")
	}
	entry := &internal.FoodEntry{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Name:      strings.TrimSpace(req.Name),
		Calories:  req.Calories,
		Protein:   req.Protein,
		Carbs:     req.Carbs,
		Fats:      req.Fats,
		Serving:   req.Serving,
		Meal:      internal.MealCategory(req.Meal),
		Time:      t,
		CreatedAt: now,
	}
	if err := repo.SaveFoodEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func DeleteFoodEntry(ctx context.Context, repo storage.FoodEntryRepository, user *internal.User, seedEntries []internal.FoodEntry, id string) error {
	if err := repo.SeedFoodEntries(ctx, user.ID, seedEntries); err != nil {
		return err
	}
	err := repo.DeleteFoodEntry(ctx, user.ID, id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	return err
}
