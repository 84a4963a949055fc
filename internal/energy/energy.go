// Package energy implements the energy-balance calculation engine:
// Mifflin-St Jeor BMR, activity scaling to TDEE, and the goal-adjusted
// daily calorie budget. All functions are pure and hold no state.
package energy

import (
	"fmt"
	"math"

	"github.com/lightmeal/calorie-helper/internal/domain"
)

// Fixed calorie offsets applied to TDEE per weight-change goal.
const (
	loseDeficit = 500
	gainSurplus = 300
)

// BMR computes the basal metabolic rate via Mifflin-St Jeor. No rounding
// is applied. Inputs are assumed finite and positive; validation happens
// at the boundary, not here.
func BMR(p domain.UserProfile) float64 {
	base := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == domain.GenderFemale {
		return base - 161
	}
	return base + 5
}

// ActivityMultiplier returns the TDEE multiplier for a level. The switch
// is exhaustive over the closed enum so an unknown level fails loudly
// instead of silently computing garbage.
func ActivityMultiplier(level domain.ActivityLevel) (float64, error) {
	switch level {
	case domain.ActivitySedentary:
		return 1.2, nil
	case domain.ActivityLight:
		return 1.375, nil
	case domain.ActivityModerate:
		return 1.55, nil
	case domain.ActivityActive:
		return 1.725, nil
	default:
		return 0, fmt.Errorf("unknown activity level %q", level)
	}
}

// TDEE computes total daily energy expenditure: BMR scaled by the
// activity multiplier, rounded half away from zero once after the
// multiplication (never on the intermediate BMR).
func TDEE(p domain.UserProfile) (int, error) {
	mult, err := ActivityMultiplier(p.ActivityLevel)
	if err != nil {
		return 0, err
	}
	return int(math.Round(BMR(p) * mult)), nil
}

// DailyGoal derives the calorie budget from TDEE by a fixed offset per
// goal. There is no clamping to a minimum safe calorie floor; an
// aggressive profile can produce an unhealthily low budget.
func DailyGoal(p domain.UserProfile) (int, error) {
	tdee, err := TDEE(p)
	if err != nil {
		return 0, err
	}
	switch p.Goal {
	case domain.GoalLose:
		return tdee - loseDeficit, nil
	case domain.GoalGain:
		return tdee + gainSurplus, nil
	case domain.GoalMaintain:
		return tdee, nil
	default:
		return 0, fmt.Errorf("unknown goal %q", p.Goal)
	}
}
