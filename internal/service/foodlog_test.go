package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/calorietracker/internal"
	"github.com/yourname/calorietracker/internal/seed"
	"github.com/yourname/calorietracker/internal/storage"
)

func TestFilterFoodEntries(t *testing.T) {
	entries := seed.MustLoad().FoodEntries

	got := FilterFoodEntries(entries, "banana", MealFilterAll)
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, 105, SumMacros(got).Calories)

	assert.Len(t, FilterFoodEntries(entries, "", MealFilterAll), 3)
	assert.Len(t, FilterFoodEntries(entries, "CHICKEN", "lunch"), 1)
	assert.Empty(t, FilterFoodEntries(entries, "chicken", "dinner"))
	assert.Len(t, FilterFoodEntries(entries, "", "breakfast"), 1)
}

func TestSumMacros(t *testing.T) {
	got := SumMacros(seed.MustLoad().FoodEntries)
	assert.Equal(t, MacroTotals{Calories: 605, Protein: 51, Carbs: 62, Fats: 23}, got)
	assert.Equal(t, MacroTotals{}, SumMacros(nil))
}

func TestRemoveFoodEntry(t *testing.T) {
	entries := seed.MustLoad().FoodEntries
	got := RemoveFoodEntry(entries, "2")
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
	assert.Len(t, entries, 3)

	assert.Len(t, RemoveFoodEntry(entries, "missing"), 3)
}

func TestMealPresentation(t *testing.T) {
	assert.Equal(t, "Breakfast", MealLabel(internal.MealBreakfast))
	assert.Equal(t, "Snack", MealLabel(internal.MealSnack))
	assert.Equal(t, "", MealLabel(""))
	assert.Equal(t, "yellow", MealColor(internal.MealBreakfast))
	assert.Equal(t, "blue", MealColor(internal.MealLunch))
	assert.Equal(t, "purple", MealColor(internal.MealDinner))
	assert.Equal(t, "green", MealColor(internal.MealSnack))
	assert.Equal(t, "gray", MealColor("brunch"))
}

func TestBuildFoodLog(t *testing.T) {
	d := seed.MustLoad()

	v, err := BuildFoodLog(d.FoodEntries, "", "", d.QuickAdd)
	require.NoError(t, err)
	assert.Equal(t, MealFilterAll, v.Meal)
	assert.Equal(t, 3, v.Count)
	assert.Empty(t, v.EmptyMessage)
	assert.Equal(t, "Lunch", v.Entries[1].MealLabel)

	v, err = BuildFoodLog(d.FoodEntries, "pizza", MealFilterAll, d.QuickAdd)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Count)
	assert.Equal(t, "No food entries found", v.EmptyMessage)
	assert.Equal(t, MacroTotals{}, v.Totals)

	_, err = BuildFoodLog(d.FoodEntries, "", "brunch", d.QuickAdd)
	assert.ErrorIs(t, err, ErrUnknownMeal)
}

func TestValidateFoodEntryRequest(t *testing.T) {
	ok := FoodEntryRequest{Name: "Apple", Calories: 95, Meal: "snack", Time: "09:05"}
	assert.NoError(t, ValidateFoodEntryRequest(&ok))

	noTime := ok
	noTime.Time = ""
	assert.NoError(t, ValidateFoodEntryRequest(&noTime))

	for name, mutate := range map[string]func(r *FoodEntryRequest){
		"no name":   func(r *FoodEntryRequest) { r.Name = "" },
		"negative":  func(r *FoodEntryRequest) { r.Fats = -1 },
		"bad meal":  func(r *FoodEntryRequest) { r.Meal = "brunch" },
		"bad time":  func(r *FoodEntryRequest) { r.Time = "9:5" },
		"late time": func(r *FoodEntryRequest) { r.Time = "24:00" },
	} {
		t.Run(name, func(t *testing.T) {
			r := ok
			mutate(&r)
			err := ValidateFoodEntryRequest(&r)
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestFoodLogLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryStorage()
	user := &internal.User{ID: "u1"}
	seedEntries := seed.MustLoad().FoodEntries
	now := time.Date(2026, 3, 14, 13, 7, 0, 0, time.UTC)

	entry, err := CreateFoodEntry(ctx, repo, user, seedEntries, &FoodEntryRequest{Name: "  Rice ", Calories: 200, Meal: "dinner"}, now)
	require.NoError(t, err)
	assert.Equal(t, "Rice", entry.Name)
	assert.Equal(t, "13:07", entry.Time)
	assert.NotEmpty(t, entry.ID)

	entries, err := ListFoodLog(ctx, repo, user, seedEntries)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, "1", entries[0].ID)
	assert.Equal(t, entry.ID, entries[3].ID)

	require.NoError(t, DeleteFoodEntry(ctx, repo, user, seedEntries, "1"))
	err = DeleteFoodEntry(ctx, repo, user, seedEntries, "1")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	entries, err = ListFoodLog(ctx, repo, user, seedEntries)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}
