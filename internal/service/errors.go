package service

import "errors"

var (
	ErrInvalidHeight = errors.New("height must be greater than zero")
	ErrInvalidWeight = errors.New("weight must be greater than zero")
	ErrInvalidNumber = errors.New("value is not a number")
	ErrUnknownMeal   = errors.New("unknown meal category")
	ErrUnknownPeriod = errors.New("unknown history period")
	ErrPasswordMatch = errors.New("passwords do not match")
	ErrEmailRequired = errors.New("email is required")
	ErrEntryNotFound = errors.New("food entry not found")
)
