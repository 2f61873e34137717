package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/calorietracker/internal"
	"github.com/yourname/calorietracker/internal/seed"
	"github.com/yourname/calorietracker/internal/storage"
)

func TestBuildProfile(t *testing.T) {
	d := seed.MustLoad()
	v := BuildProfile(d.Profile, d.Targets)
	require.NotNil(t, v.BMI)
	assert.InDelta(t, 22.9, *v.BMI, 1e-9)
	assert.Equal(t, "Normal", v.Category.Category)
	assert.Empty(t, v.BMIError)

	p := d.Profile
	p.Height = "0"
	v = BuildProfile(p, d.Targets)
	assert.Nil(t, v.BMI)
	assert.Nil(t, v.Category)
	assert.Contains(t, v.BMIError, "height")
}

func TestProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryStorage()
	user := &internal.User{ID: "u1"}
	defaults := seed.MustLoad().Profile

	p, err := GetProfile(ctx, repo, user, defaults)
	require.NoError(t, err)
	assert.Equal(t, defaults, *p)

	req := &ProfileRequest{Age: "40", Weight: "82.5", Height: "180", Gender: "other", ActivityLevel: "sedentary", Goal: "lose", TargetWeight: "78"}
	require.NoError(t, ValidateProfileRequest(req))
	_, err = SaveProfile(ctx, repo, user, req)
	require.NoError(t, err)

	p, err = GetProfile(ctx, repo, user, defaults)
	require.NoError(t, err)
	assert.Equal(t, "82.5", p.Weight)
	assert.Equal(t, "sedentary", p.ActivityLevel)
}

func TestValidateProfileRequest(t *testing.T) {
	ok := ProfileRequest{Age: "25", Weight: "70", Height: "175", Gender: "male", ActivityLevel: "moderate", Goal: "maintain", TargetWeight: "70"}
	assert.NoError(t, ValidateProfileRequest(&ok))

	bad := ok
	bad.Weight = "seventy"
	assert.Error(t, ValidateProfileRequest(&bad))

	bad = ok
	bad.Goal = "bulk"
	assert.Error(t, ValidateProfileRequest(&bad))

	bad = ok
	bad.Age = ""
	assert.Error(t, ValidateProfileRequest(&bad))

	for _, v := range []string{"-70", "0"} {
		bad = ok
		bad.Weight = v
		assert.Error(t, ValidateProfileRequest(&bad), v)
		bad = ok
		bad.TargetWeight = v
		assert.Error(t, ValidateProfileRequest(&bad), v)
		bad = ok
		bad.Height = v
		assert.Error(t, ValidateProfileRequest(&bad), v)
	}

	p := seed.MustLoad().Profile
	p.Weight = "-70"
	v := BuildProfile(p, seed.MustLoad().Targets)
	assert.Nil(t, v.BMI)
	assert.Contains(t, v.BMIError, "weight")
}
