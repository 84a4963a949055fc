package energy

import (
	"math"
	"testing"

	"github.com/lightmeal/calorie-helper/internal/domain"
)

func referenceProfile() domain.UserProfile {
	return domain.UserProfile{
		Height:        165,
		Weight:        55,
		Age:           26,
		Gender:        domain.GenderFemale,
		ActivityLevel: domain.ActivityLight,
		Goal:          domain.GoalMaintain,
	}
}

// TestBMR_Formula verifies the Mifflin-St Jeor formula against the
// direct computation for both genders.
func TestBMR_Formula(t *testing.T) {
	cases := []struct {
		name    string
		gender  domain.Gender
		weight  float64
		height  float64
		age     int
		want    float64
	}{
		{"female reference", domain.GenderFemale, 55, 165, 26, 10*55 + 6.25*165 - 5*26 - 161},
		{"male reference", domain.GenderMale, 55, 165, 26, 10*55 + 6.25*165 - 5*26 + 5},
		{"female heavier", domain.GenderFemale, 70, 170, 40, 10*70 + 6.25*170 - 5*40 - 161},
		{"male taller", domain.GenderMale, 80, 185, 30, 10*80 + 6.25*185 - 5*30 + 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := domain.UserProfile{
				Height: tc.height,
				Weight: tc.weight,
				Age:    tc.age,
				Gender: tc.gender,
			}
			got := BMR(p)
			if got != tc.want {
				t.Errorf("BMR = %v, want %v", got, tc.want)
			}
		})
	}
}

// TestBMR_NoRounding verifies that BMR keeps its fractional part: the
// reference profile yields exactly 1290.25.
func TestBMR_NoRounding(t *testing.T) {
	got := BMR(referenceProfile())
	if got != 1290.25 {
		t.Errorf("BMR = %v, want 1290.25", got)
	}
}

// TestActivityMultiplier_Table verifies the exact multiplier table.
func TestActivityMultiplier_Table(t *testing.T) {
	cases := []struct {
		level domain.ActivityLevel
		want  float64
	}{
		{domain.ActivitySedentary, 1.2},
		{domain.ActivityLight, 1.375},
		{domain.ActivityModerate, 1.55},
		{domain.ActivityActive, 1.725},
	}

	for _, tc := range cases {
		t.Run(string(tc.level), func(t *testing.T) {
			got, err := ActivityMultiplier(tc.level)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("multiplier = %v, want %v", got, tc.want)
			}
		})
	}
}

// TestActivityMultiplier_Unknown verifies that an unknown level is a loud
// error, never a silent zero multiplier.
func TestActivityMultiplier_Unknown(t *testing.T) {
	if _, err := ActivityMultiplier(domain.ActivityLevel("couch")); err == nil {
		t.Error("expected error for unknown activity level, got nil")
	}
}

// TestTDEE_MatchesBMRTimesMultiplier verifies that TDEE equals the BMR
// times the multiplier, rounded once after multiplication.
func TestTDEE_MatchesBMRTimesMultiplier(t *testing.T) {
	p := referenceProfile()
	for _, level := range []domain.ActivityLevel{
		domain.ActivitySedentary,
		domain.ActivityLight,
		domain.ActivityModerate,
		domain.ActivityActive,
	} {
		p.ActivityLevel = level
		mult, err := ActivityMultiplier(level)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := int(math.Round(BMR(p) * mult))
		got, err := TDEE(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("TDEE(%s) = %d, want %d", level, got, want)
		}
	}
}

// TestTDEE_ReferenceScenario: BMR 1290.25 at light activity gives
// round(1290.25 * 1.375) = round(1774.09...) = 1774.
func TestTDEE_ReferenceScenario(t *testing.T) {
	got, err := TDEE(referenceProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1774 {
		t.Errorf("TDEE = %d, want 1774", got)
	}
}

// TestTDEE_UnknownLevel verifies that the error propagates.
func TestTDEE_UnknownLevel(t *testing.T) {
	p := referenceProfile()
	p.ActivityLevel = "extreme"
	if _, err := TDEE(p); err == nil {
		t.Error("expected error for unknown activity level, got nil")
	}
}

// TestDailyGoal_Offsets verifies the fixed per-goal offsets against the
// reference scenario: maintain 1774, lose 1274, gain 2074.
func TestDailyGoal_Offsets(t *testing.T) {
	cases := []struct {
		goal domain.GoalType
		want int
	}{
		{domain.GoalMaintain, 1774},
		{domain.GoalLose, 1274},
		{domain.GoalGain, 2074},
	}

	for _, tc := range cases {
		t.Run(string(tc.goal), func(t *testing.T) {
			p := referenceProfile()
			p.Goal = tc.goal
			got, err := DailyGoal(p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("DailyGoal = %d, want %d", got, tc.want)
			}
		})
	}
}

// TestDailyGoal_MaintainIsIdentity verifies maintain equals TDEE exactly
// across several profiles.
func TestDailyGoal_MaintainIsIdentity(t *testing.T) {
	profiles := []domain.UserProfile{
		{Height: 165, Weight: 55, Age: 26, Gender: domain.GenderFemale, ActivityLevel: domain.ActivityLight, Goal: domain.GoalMaintain},
		{Height: 185, Weight: 90, Age: 45, Gender: domain.GenderMale, ActivityLevel: domain.ActivityActive, Goal: domain.GoalMaintain},
		{Height: 158, Weight: 48, Age: 19, Gender: domain.GenderFemale, ActivityLevel: domain.ActivitySedentary, Goal: domain.GoalMaintain},
	}
	for _, p := range profiles {
		tdee, err := TDEE(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		goal, err := DailyGoal(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if goal != tdee {
			t.Errorf("DailyGoal = %d, want TDEE %d", goal, tdee)
		}
	}
}

// TestDailyGoal_TargetWeightIgnored verifies that TargetWeight is
// advisory only and never changes the computed budget.
func TestDailyGoal_TargetWeightIgnored(t *testing.T) {
	p := referenceProfile()
	p.Goal = domain.GoalLose
	without, err := DailyGoal(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.TargetWeight = 48
	with, err := DailyGoal(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if with != without {
		t.Errorf("DailyGoal changed with TargetWeight: %d vs %d", with, without)
	}
}
