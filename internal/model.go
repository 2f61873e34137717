package internal

import "time"

type User struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name"`
}

type MealCategory string

const (
	MealBreakfast MealCategory = "breakfast"
	MealLunch     MealCategory = "lunch"
	MealDinner    MealCategory = "dinner"
	MealSnack     MealCategory = "snack"
)

// Meals lists the categories in the order the views show them.
var Meals = []MealCategory{MealBreakfast, MealLunch, MealDinner, MealSnack}

type FoodEntry struct {
	ID        string       `json:"id" yaml:"id"`
	UserID    string       `json:"user_id,omitempty" yaml:"-"`
	Name      string       `json:"name" yaml:"name"`
	Calories  int          `json:"calories" yaml:"calories"`
	Protein   int          `json:"protein" yaml:"protein"` // grams
	Carbs     int          `json:"carbs" yaml:"carbs"`
	Fats      int          `json:"fats" yaml:"fats"`
	Serving   string       `json:"serving" yaml:"serving"`
	Meal      MealCategory `json:"meal" yaml:"meal"`
	Time      string       `json:"time" yaml:"time"` // HH:MM
	CreatedAt time.Time    `json:"created_at" yaml:"-"`
}

// ProfileData keeps the form values as entered; numbers are parsed on demand.
type ProfileData struct {
	Age           string `json:"age" yaml:"age"`
	Weight        string `json:"weight" yaml:"weight"` // kg
	Height        string `json:"height" yaml:"height"` // cm
	Gender        string `json:"gender" yaml:"gender"`
	ActivityLevel string `json:"activity_level" yaml:"activity_level"`
	Goal          string `json:"goal" yaml:"goal"`
	TargetWeight  string `json:"target_weight" yaml:"target_weight"`
}

type Settings struct {
	Units         string `json:"units" yaml:"units"`
	Notifications bool   `json:"notifications" yaml:"notifications"`
	WeeklyReports bool   `json:"weekly_reports" yaml:"weekly_reports"`
	DarkMode      bool   `json:"dark_mode" yaml:"dark_mode"`
	Language      string `json:"language" yaml:"language"`
}

type AccountInfo struct {
	Email string `json:"email" yaml:"email"`
	Name  string `json:"name" yaml:"name"`
}

type WeeklyDayRecord struct {
	Date     string  `json:"date" yaml:"date"`
	Calories int     `json:"calories" yaml:"calories"`
	Weight   float64 `json:"weight" yaml:"weight"` // kg
	Goal     int     `json:"goal" yaml:"goal"`
}

type MacroAmount struct {
	Consumed int `json:"consumed" yaml:"consumed"`
	Target   int `json:"target" yaml:"target"`
}

type MealSummary struct {
	Meal     string `json:"meal" yaml:"meal"`
	Items    int    `json:"items" yaml:"items"`
	Calories int    `json:"calories" yaml:"calories"`
}

type DailyStats struct {
	CaloriesConsumed int           `json:"calories_consumed" yaml:"calories_consumed"`
	CaloriesTarget   int           `json:"calories_target" yaml:"calories_target"`
	CaloriesBurned   int           `json:"calories_burned" yaml:"calories_burned"`
	Protein          MacroAmount   `json:"protein" yaml:"protein"`
	Carbs            MacroAmount   `json:"carbs" yaml:"carbs"`
	Fats             MacroAmount   `json:"fats" yaml:"fats"`
	Meals            []MealSummary `json:"meals" yaml:"meals"`
}

type DailyTargets struct {
	Calories int `json:"calories" yaml:"calories"`
	Protein  int `json:"protein" yaml:"protein"`
	Carbs    int `json:"carbs" yaml:"carbs"`
	Fats     int `json:"fats" yaml:"fats"`
}

// Notification is the transient message a client shows after an action.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant,omitempty"` // "" or "destructive"
}
