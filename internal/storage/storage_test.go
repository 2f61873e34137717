package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/calorietracker/internal"
)

var seedEntries = []internal.FoodEntry{
	{ID: "1", Name: "Greek Yogurt with Berries", Calories: 150, Protein: 15, Carbs: 20, Fats: 5, Serving: "1 cup", Meal: internal.MealBreakfast, Time: "08:30"},
	{ID: "2", Name: "Grilled Chicken Salad", Calories: 350, Protein: 35, Carbs: 15, Fats: 18, Serving: "1 large bowl", Meal: internal.MealLunch, Time: "12:45"},
	{ID: "3", Name: "Banana", Calories: 105, Protein: 1, Carbs: 27, Fats: 0, Serving: "1 medium", Meal: internal.MealSnack, Time: "15:20"},
}

type backend struct {
	name string
	open func(t *testing.T) Repositories
}

func backends() []backend {
	bs := []backend{
		{"memory", func(t *testing.T) Repositories { return NewMemoryStorage() }},
		{"file", func(t *testing.T) Repositories {
			dir := t.TempDir()
			s, err := newFileStorage(filepath.Join(dir, "entries.json"), filepath.Join(dir, "prefs.json"), 10*time.Millisecond, internal.NewNopLogger())
			require.NoError(t, err)
			return s
		}},
		{"sqlite", func(t *testing.T) Repositories {
			s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "ct.db"), internal.NewNopLogger())
			require.NoError(t, err)
			return s
		}},
	}
	// Postgres runs only against a throwaway database.
	if dsn := os.Getenv("POSTGRES_TEST_DSN"); dsn != "" {
		bs = append(bs, backend{"postgres", func(t *testing.T) Repositories {
			ctx := context.Background()
			s, err := NewPostgresStorage(ctx, dsn, internal.NewNopLogger())
			require.NoError(t, err)
			_, err = s.pool.Exec(ctx, `TRUNCATE users, seeded_users, food_entries, profiles, settings, accounts`)
			require.NoError(t, err)
			return s
		}})
	}
	return bs
}

func ids(entries []internal.FoodEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestFoodEntries_SeedOnce(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			s := b.open(t)
			defer s.Close()

			require.NoError(t, s.SeedFoodEntries(ctx, "u1", seedEntries))
			got, err := s.ListFoodEntries(ctx, "u1")
			require.NoError(t, err)
			assert.Equal(t, []string{"1", "2", "3"}, ids(got))
			assert.Equal(t, "u1", got[0].UserID)

			// Deleting everything and seeding again must not resurrect entries.
			for _, id := range []string{"1", "2", "3"} {
				require.NoError(t, s.DeleteFoodEntry(ctx, "u1", id))
			}
			require.NoError(t, s.SeedFoodEntries(ctx, "u1", seedEntries))
			got, err = s.ListFoodEntries(ctx, "u1")
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestFoodEntries_SaveListDelete(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			s := b.open(t)
			defer s.Close()

			require.NoError(t, s.SeedFoodEntries(ctx, "u1", seedEntries))
			e := &internal.FoodEntry{ID: "abc", UserID: "u1", Name: "Oatmeal", Calories: 300, Protein: 10, Carbs: 54, Fats: 5, Meal: internal.MealBreakfast, Time: "07:00", CreatedAt: time.Now()}
			require.NoError(t, s.SaveFoodEntry(ctx, e))

			got, err := s.ListFoodEntries(ctx, "u1")
			require.NoError(t, err)
			assert.Equal(t, []string{"1", "2", "3", "abc"}, ids(got))

			// Saving the same id updates in place.
			e.Calories = 320
			require.NoError(t, s.SaveFoodEntry(ctx, e))
			got, err = s.ListFoodEntries(ctx, "u1")
			require.NoError(t, err)
			require.Len(t, got, 4)
			assert.Equal(t, 320, got[3].Calories)

			require.NoError(t, s.DeleteFoodEntry(ctx, "u1", "2"))
			got, err = s.ListFoodEntries(ctx, "u1")
			require.NoError(t, err)
			assert.Equal(t, []string{"1", "3", "abc"}, ids(got))

			assert.ErrorIs(t, s.DeleteFoodEntry(ctx, "u1", "2"), ErrNotFound)
			assert.ErrorIs(t, s.DeleteFoodEntry(ctx, "nobody", "1"), ErrNotFound)
		})
	}
}

func TestFoodEntries_UsersAreIsolated(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			s := b.open(t)
			defer s.Close()

			require.NoError(t, s.SeedFoodEntries(ctx, "u1", seedEntries))
			require.NoError(t, s.SeedFoodEntries(ctx, "u2", seedEntries))
			require.NoError(t, s.DeleteFoodEntry(ctx, "u1", "3"))

			u2, err := s.ListFoodEntries(ctx, "u2")
			require.NoError(t, err)
			assert.Len(t, u2, 3)
			empty, err := s.ListFoodEntries(ctx, "u3")
			require.NoError(t, err)
			assert.NotNil(t, empty)
			assert.Empty(t, empty)
		})
	}
}

func TestPreferences(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			s := b.open(t)
			defer s.Close()

			_, err := s.GetProfile(ctx, "u1")
			assert.ErrorIs(t, err, ErrNotFound)
			_, err = s.GetSettings(ctx, "u1")
			assert.ErrorIs(t, err, ErrNotFound)
			_, err = s.GetAccount(ctx, "u1")
			assert.ErrorIs(t, err, ErrNotFound)

			p := &internal.ProfileData{Age: "30", Weight: "80", Height: "180", Gender: "female", ActivityLevel: "light", Goal: "lose", TargetWeight: "75"}
			require.NoError(t, s.SaveProfile(ctx, "u1", p))
			gotP, err := s.GetProfile(ctx, "u1")
			require.NoError(t, err)
			assert.Equal(t, *p, *gotP)

			st := &internal.Settings{Units: "imperial", Notifications: false, WeeklyReports: true, DarkMode: true, Language: "fr"}
			require.NoError(t, s.SaveSettings(ctx, "u1", st))
			gotS, err := s.GetSettings(ctx, "u1")
			require.NoError(t, err)
			assert.Equal(t, *st, *gotS)

			a := &internal.AccountInfo{Email: "jane@example.com", Name: "Jane"}
			require.NoError(t, s.SaveAccount(ctx, "u1", a))
			a.Name = "Changed after save"
			gotA, err := s.GetAccount(ctx, "u1")
			require.NoError(t, err)
			assert.Equal(t, "Jane", gotA.Name)
		})
	}
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			s := b.open(t)
			defer s.Close()

			_, err := s.GetUserByToken(ctx, "MOCK-TOKEN")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.SaveUser(ctx, &internal.User{ID: "u1", Token: "MOCK-TOKEN", Name: "Demo User"}))
			require.NoError(t, s.SaveUser(ctx, &internal.User{ID: "u1", Token: "MOCK-TOKEN", Name: "Ann"}))
			u, err := s.GetUserByToken(ctx, "MOCK-TOKEN")
			require.NoError(t, err)
			assert.Equal(t, "u1", u.ID)
			assert.Equal(t, "Ann", u.Name)

			_, err = s.GetUserByToken(ctx, "nope")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestSQLiteCreatesNestedDir(t *testing.T) {
	s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "nested", "ct.db"), internal.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

// TestPostgresStorage reports a skip when no database is configured, so a
// green run says whether postgres was exercised by the suites above.
func TestPostgresStorage(t *testing.T) {
	if os.Getenv("POSTGRES_TEST_DSN") == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}
	var pg *backend
	for _, b := range backends() {
		if b.name == "postgres" {
			pg = &b
		}
	}
	require.NotNil(t, pg)

	ctx := context.Background()
	s := pg.open(t)
	defer s.Close()

	require.NoError(t, s.SeedFoodEntries(ctx, "u1", seedEntries))
	require.NoError(t, s.DeleteFoodEntry(ctx, "u1", "2"))
	require.NoError(t, s.SeedFoodEntries(ctx, "u1", seedEntries))
	got, err := s.ListFoodEntries(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, ids(got))
	assert.ErrorIs(t, s.DeleteFoodEntry(ctx, "u1", "2"), ErrNotFound)
}
