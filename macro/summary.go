package macro

import "math"

// MacroShare is one macronutrient's contribution to the daily calories.
type MacroShare struct {
	Grams   int `json:"grams"`
	Kcal    int `json:"kcal"`
	Percent int `json:"percent"`
}

// Summary holds the display figures shown alongside a Plan.
type Summary struct {
	GoalLabel       string     `json:"goal_label"`
	CaloriesPerMeal int        `json:"calories_per_meal"`
	Protein         MacroShare `json:"protein"`
	Carbs           MacroShare `json:"carbs"`
	Fat             MacroShare `json:"fat"`
	WaterLiters     int        `json:"water_liters"`
	FiberG          int        `json:"fiber_g"`
}

const (
	waterLitersPerKG = 0.035
	fiberGPer1000    = 14
)

// GoalLabel returns the human label for goal. Unknown goals read as
// maintenance, matching how TargetCalories treats them.
func GoalLabel(goal Goal) string {
	switch goal {
	case Lose:
		return "Weight Loss"
	case Gain:
		return "Weight Gain"
	default:
		return "Maintenance"
	}
}

// Summarize derives the results-view figures from a computed plan.
func Summarize(p Plan) Summary {
	s := Summary{
		GoalLabel:   GoalLabel(p.Goal),
		Protein:     share(p.ProteinG, kcalPerGramProtein, p.Calories),
		Carbs:       share(p.CarbsG, kcalPerGramCarbs, p.Calories),
		Fat:         share(p.FatG, kcalPerGramFat, p.Calories),
		WaterLiters: int(math.Round(p.WeightKG * waterLitersPerKG)),
		FiberG:      int(math.Round(float64(p.Calories) / 1000 * fiberGPer1000)),
	}
	if p.MealsPerDay > 0 {
		s.CaloriesPerMeal = int(math.Round(float64(p.Calories) / float64(p.MealsPerDay)))
	}
	return s
}

func share(grams, kcalPerGram, calories int) MacroShare {
	m := MacroShare{Grams: grams, Kcal: grams * kcalPerGram}
	if calories > 0 {
		m.Percent = int(math.Round(float64(m.Kcal) / float64(calories) * 100))
	}
	return m
}
