package service

import "github.com/yourname/calorietracker/internal"

var (
	NoteFoodAdded = internal.Notification{
		Title:       "Add Food",
		Description: "Search and add food items to your log",
	}
	NoteFoodRemoved = internal.Notification{
		Title:       "Food Removed",
		Description: "Food entry has been deleted from your log",
	}
	NoteProfileUpdated = internal.Notification{
		Title:       "Profile Updated",
		Description: "Your profile has been saved successfully!",
	}
	NoteSettingsSaved = internal.Notification{
		Title:       "Settings Saved",
		Description: "Your preferences have been updated successfully!",
	}
	NoteSignedOut = internal.Notification{
		Title:       "Signed Out",
		Description: "You have been signed out successfully.",
	}
	NotePasswordReset = internal.Notification{
		Title:       "Password Reset",
		Description: "Password reset email has been sent to your email address.",
	}
	NotePasswordMismatch = internal.Notification{
		Title:       "Password Mismatch",
		Description: "Passwords do not match. Please try again.",
		Variant:     "destructive",
	}
	NoteWelcomeBack = internal.Notification{
		Title:       "Welcome Back!",
		Description: "You have been logged in successfully.",
	}
	NoteAccountCreated = internal.Notification{
		Title:       "Account Created!",
		Description: "Your account has been created. Welcome to CalorieTracker!",
	}
	NoteEmailRequired = internal.Notification{
		Title:       "Email Required",
		Description: "Please enter your email address to reset your password.",
		Variant:     "destructive",
	}
	NoteResetEmailSent = internal.Notification{
		Title:       "Reset Email Sent",
		Description: "Check your email for password reset instructions.",
	}
)
