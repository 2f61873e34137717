package service

import (
	"context"
	"errors"

	"github.com/yourname/calorietracker/internal"
	"github.com/yourname/calorietracker/internal/storage"
)

type ProfileRequest struct {
	Age           string `json:"age" validate:"required,positive_num"`
	Weight        string `json:"weight" validate:"required,positive_num"`
	Height        string `json:"height" validate:"required,positive_num"`
	Gender        string `json:"gender" validate:"required,oneof=male female other"`
	ActivityLevel string `json:"activity_level" validate:"required,oneof=sedentary light moderate active very-active"`
	Goal          string `json:"goal" validate:"required,oneof=lose maintain gain muscle"`
	TargetWeight  string `json:"target_weight" validate:"required,positive_num"`
}

type ProfileView struct {
	Profile  internal.ProfileData  `json:"profile"`
	BMI      *float64              `json:"bmi"`
	Category *BMICategory          `json:"bmi_category,omitempty"`
	BMIError string                `json:"bmi_error,omitempty"`
	Targets  internal.DailyTargets `json:"targets"`
}

func ValidateProfileRequest(req *ProfileRequest) error {
	return validate.Struct(req)
}

func BuildProfile(p internal.ProfileData, targets internal.DailyTargets) ProfileView {
	v := ProfileView{Profile: p, Targets: targets}
	bmi, err := ParseBMI(p.Weight, p.Height)
	if err != nil {
		v.BMIError = err.Error()
		return v
	}
	cat := BMICategoryFor(bmi)
	v.BMI = &bmi
	v.Category = &cat
	return v
}

// GetProfile falls back to the default profile until the user saves one.
func GetProfile(ctx context.Context, repo storage.ProfileRepository, user *internal.User, defaults internal.ProfileData) (*internal.ProfileData, error) {
	p, err := repo.GetProfile(ctx, user.ID)
	if errors.Is(err, storage.ErrNotFound) {
		d := defaults
		return &d, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func SaveProfile(ctx context.Context, repo storage.ProfileRepository, user *internal.User, req *ProfileRequest) (*internal.ProfileData, error) {
	p := &internal.ProfileData{
		Age:           req.Age,
		Weight:        req.Weight,
		Height:        req.Height,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
		Goal:          req.Goal,
		TargetWeight:  req.TargetWeight,
	}
	if err := repo.SaveProfile(ctx, user.ID, p); err != nil {
		return nil, err
	}
	return p, nil
}
