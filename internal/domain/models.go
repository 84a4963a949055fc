package domain

import (
	"time"
)

// Gender is the biological sex used by the Mifflin-St Jeor formula.
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

// ActivityLevel scales BMR to total daily energy expenditure.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
)

// GoalType is the user's weight-change intent.
type GoalType string

const (
	GoalMaintain GoalType = "maintain"
	GoalLose     GoalType = "lose"
	GoalGain     GoalType = "gain"
)

// MealType categorizes a food record.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists all valid meal categories.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// UserProfile holds the body profile the energy model consumes.
// TargetWeight is advisory display data only and never feeds the
// calorie-goal computation.
type UserProfile struct {
	Height        float64       `json:"height"` // cm
	Weight        float64       `json:"weight"` // kg
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	Goal          GoalType      `json:"goal"`
	TargetWeight  float64       `json:"targetWeight,omitempty"`
}

// DefaultProfile is the profile used at first run and whenever the
// persisted profile is absent or unreadable.
func DefaultProfile() UserProfile {
	return UserProfile{
		Height:        165,
		Weight:        55,
		Age:           26,
		Gender:        GenderFemale,
		ActivityLevel: ActivityLight,
		Goal:          GoalMaintain,
	}
}

// FoodRecord is a single logged food-intake event. Records are immutable
// once created; the collection is ordered newest-first by insertion.
type FoodRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Calories  int       `json:"calories"`
	MealType  MealType  `json:"mealType"`
	Quantity  string    `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
}

// RecordInput is the user-supplied part of a food record. ID and
// timestamp are assigned by the record service at creation time.
type RecordInput struct {
	Name     string   `json:"name"`
	Calories int      `json:"calories"`
	MealType MealType `json:"mealType"`
	Quantity string   `json:"quantity"`
}

// Session tracks login state and identity.
type Session struct {
	LoggedIn bool   `json:"isLoggedIn"`
	Username string `json:"username"`
	Token    string `json:"token,omitempty"`
}

// DailySummary is the dashboard view of a single day. All fields are
// derived from the profile and record collection on demand, never stored.
type DailySummary struct {
	Date       string  `json:"date"`
	BMR        float64 `json:"bmr"`
	TDEE       int     `json:"tdee"`
	DailyGoal  int     `json:"dailyGoal"`
	Intake     int     `json:"intake"`
	Remaining  int     `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// QuickFood is a predefined catalog entry usable for one-tap logging.
type QuickFood struct {
	Name     string   `json:"name"`
	Calories int      `json:"calories"`
	Unit     string   `json:"unit"`
	MealType MealType `json:"mealType"`
}

// QuickFoods is the static quick-pick catalog. Reference data only;
// selecting an entry produces an ordinary FoodRecord.
var QuickFoods = []QuickFood{
	{Name: "Latte", Calories: 120, Unit: "cup", MealType: MealSnack},
	{Name: "Americano", Calories: 5, Unit: "cup", MealType: MealSnack},
	{Name: "Bubble tea", Calories: 450, Unit: "cup", MealType: MealSnack},
	{Name: "Chicken breast salad", Calories: 320, Unit: "serving", MealType: MealLunch},
	{Name: "Sandwich", Calories: 280, Unit: "piece", MealType: MealBreakfast},
	{Name: "Mixed nuts", Calories: 160, Unit: "30g", MealType: MealSnack},
	{Name: "Apple", Calories: 95, Unit: "piece", MealType: MealSnack},
}

// FoodRecognition is what the AI collaborator returns for an image.
type FoodRecognition struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
}

// FoodSearchResult is what the AI collaborator returns for a free-text
// calorie lookup.
type FoodSearchResult struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Unit     string  `json:"unit"`
}
