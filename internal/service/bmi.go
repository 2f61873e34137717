package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type BMICategory struct {
	Category string `json:"category"`
	Color    string `json:"color"`
}

// BMI returns weight / height(m)^2 rounded to one decimal.
func BMI(weightKg, heightCm float64) (float64, error) {
	if heightCm <= 0 {
		return 0, ErrInvalidHeight
	}
	if weightKg <= 0 {
		return 0, ErrInvalidWeight
	}
	heightM := heightCm / 100
	return round1(weightKg / (heightM * heightM)), nil
}

// ParseBMI computes BMI from the free-form profile strings.
func ParseBMI(weight, height string) (float64, error) {
	w, err := parseNumber(weight)
	if err != nil {
		return 0, fmt.Errorf("weight: %w", err)
	}
	h, err := parseNumber(height)
	if err != nil {
		return 0, fmt.Errorf("height: %w", err)
	}
	return BMI(w, h)
}

func BMICategoryFor(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMICategory{Category: "Underweight", Color: "blue"}
	case bmi < 25:
		return BMICategory{Category: "Normal", Color: "success"}
	case bmi < 30:
		return BMICategory{Category: "Overweight", Color: "warning"}
	default:
		return BMICategory{Category: "Obese", Color: "destructive"}
	}
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return v, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
