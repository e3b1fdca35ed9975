package macro

import (
	"math"
	"strconv"
)

// ActivityInfo describes one row of the activity multiplier table.
type ActivityInfo struct {
	Level       ActivityLevel `json:"level"`
	Multiplier  float64       `json:"multiplier"`
	Description string        `json:"description"`
}

// ActivityLevels is the closed multiplier table, in form display order. This
// is the single source of truth for valid activity levels.
var ActivityLevels = []ActivityInfo{
	{Sedentary, 1.2, "Sedentary (little/no exercise)"},
	{Light, 1.375, "Light (1-3 days/week)"},
	{Moderate, 1.55, "Moderate (3-5 days/week)"},
	{Active, 1.725, "Active (6-7 days/week)"},
	{VeryActive, 1.9, "Very Active (intense daily training)"},
}

const (
	goalAdjustmentKcal = 500
	proteinPerKG       = 2.0
	fatCalorieShare    = 0.27
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9

	// maxNumericInput caps height, weight and age so every derived value
	// stays well inside int range.
	maxNumericInput = 1_000_000
)

// Multiplier returns the TDEE multiplier for level. ok is false for any level
// outside the table.
func Multiplier(level ActivityLevel) (float64, bool) {
	for _, a := range ActivityLevels {
		if a.Level == level {
			return a.Multiplier, true
		}
	}
	return 0, false
}

// BMR computes basal metabolic rate with the Harris-Benedict equation.
func BMR(g Gender, weightKG, heightCM float64, ageYears int) (float64, error) {
	age := float64(ageYears)
	switch g {
	case Male:
		return 88.362 + 13.397*weightKG + 4.799*heightCM - 5.677*age, nil
	case Female:
		return 447.593 + 9.247*weightKG + 3.098*heightCM - 4.330*age, nil
	default:
		return 0, inputError(ErrInvalidGender, "gender", string(g))
	}
}

// TargetCalories applies the goal adjustment to tdee. Only Lose and Gain
// change the value; every other goal, recognised or not, is maintenance.
func TargetCalories(tdee float64, goal Goal) float64 {
	switch goal {
	case Lose:
		return tdee - goalAdjustmentKcal
	case Gain:
		return tdee + goalAdjustmentKcal
	default:
		return tdee
	}
}

// MealsPerDay maps a daily calorie target to a meal count in [3, 6].
func MealsPerDay(kcal float64) int {
	switch {
	case kcal >= 3000:
		return 6
	case kcal >= 2500:
		return 5
	case kcal >= 2000:
		return 4
	default:
		return 3
	}
}

// Compute derives a nutrition plan from p. It validates numeric inputs, then
// gender, then activity level, and returns on the first failure without
// producing a partial plan.
//
// Each output is rounded on its own with math.Round. Fat, carbs and the meal
// count use the unrounded target; carbs use the already rounded protein and
// fat grams, so the macro calories may differ from Calories by a few kcal.
func Compute(p Profile) (Plan, error) {
	if err := validateNumbers(p); err != nil {
		return Plan{}, err
	}

	bmr, err := BMR(p.Gender, p.WeightKG, p.HeightCM, p.AgeYears)
	if err != nil {
		return Plan{}, err
	}

	mult, found := Multiplier(p.ActivityLevel)
	if !found {
		return Plan{}, inputError(ErrInvalidActivityLevel, "activity_level", string(p.ActivityLevel))
	}
	tdee := bmr * mult

	target := TargetCalories(tdee, p.Goal)

	protein := math.Round(p.WeightKG * proteinPerKG)
	fat := math.Round(target * fatCalorieShare / kcalPerGramFat)
	carbs := math.Round((target - protein*kcalPerGramProtein - fat*kcalPerGramFat) / kcalPerGramCarbs)

	return Plan{
		Calories:      int(math.Round(target)),
		ProteinG:      int(protein),
		CarbsG:        int(carbs),
		FatG:          int(fat),
		MealsPerDay:   MealsPerDay(target),
		BMR:           int(math.Round(bmr)),
		TDEE:          int(math.Round(tdee)),
		WeightKG:      p.WeightKG,
		ActivityLevel: p.ActivityLevel,
		Goal:          p.Goal,
	}, nil
}

func validateNumbers(p Profile) error {
	if !inRange(p.HeightCM) {
		return inputError(ErrInvalidNumericInput, "height_cm", formatFloat(p.HeightCM))
	}
	if !inRange(p.WeightKG) {
		return inputError(ErrInvalidNumericInput, "weight_kg", formatFloat(p.WeightKG))
	}
	if p.AgeYears <= 0 || p.AgeYears > maxNumericInput {
		return inputError(ErrInvalidNumericInput, "age_years", strconv.Itoa(p.AgeYears))
	}
	return nil
}

// inRange reports whether v is finite and in (0, maxNumericInput].
func inRange(v float64) bool {
	return v > 0 && v <= maxNumericInput && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
