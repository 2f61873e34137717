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
	"go.uber.org/goleak"
)

func TestFileStorage_PersistsAcrossReopen(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := context.Background()
	dir := t.TempDir()
	entriesFile := filepath.Join(dir, "entries.json")
	prefsFile := filepath.Join(dir, "prefs.json")

	s, err := NewFileStorage(entriesFile, prefsFile, internal.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, s.SeedFoodEntries(ctx, "u1", seedEntries))
	require.NoError(t, s.DeleteFoodEntry(ctx, "u1", "1"))
	require.NoError(t, s.SaveProfile(ctx, "u1", &internal.ProfileData{Weight: "72", Height: "170"}))
	require.NoError(t, s.SaveUser(ctx, &internal.User{ID: "u1", Token: "MOCK-TOKEN", Name: "Ann"}))
	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "second Close is a no-op")

	info, err := os.Stat(entriesFile)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)

	reopened, err := NewFileStorage(entriesFile, prefsFile, internal.NewNopLogger())
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.ListFoodEntries(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, ids(got))

	// Seed flag survives, so the deleted entry stays deleted.
	require.NoError(t, reopened.SeedFoodEntries(ctx, "u1", seedEntries))
	got, err = reopened.ListFoodEntries(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	p, err := reopened.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "72", p.Weight)

	u, err := reopened.GetUserByToken(ctx, "MOCK-TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "Ann", u.Name)
}

func TestFileStorage_WorkerFlushesAfterDelay(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := context.Background()
	dir := t.TempDir()
	entriesFile := filepath.Join(dir, "entries.json")

	s, err := newFileStorage(entriesFile, filepath.Join(dir, "prefs.json"), 5*time.Millisecond, internal.NewNopLogger())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SeedFoodEntries(ctx, "u1", seedEntries))
	assert.Eventually(t, func() bool {
		info, err := os.Stat(entriesFile)
		return err == nil && info.Size() > 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestFileStorage_EmptyFilesLoad(t *testing.T) {
	dir := t.TempDir()
	entriesFile := filepath.Join(dir, "entries.json")
	prefsFile := filepath.Join(dir, "prefs.json")
	require.NoError(t, os.WriteFile(entriesFile, nil, 0o644))
	require.NoError(t, os.WriteFile(prefsFile, nil, 0o644))

	s, err := NewFileStorage(entriesFile, prefsFile, internal.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestFileStorage_CorruptFileFails(t *testing.T) {
	dir := t.TempDir()
	entriesFile := filepath.Join(dir, "entries.json")
	require.NoError(t, os.WriteFile(entriesFile, []byte("{not json"), 0o644))

	_, err := NewFileStorage(entriesFile, filepath.Join(dir, "prefs.json"), internal.NewNopLogger())
	assert.Error(t, err)
}
