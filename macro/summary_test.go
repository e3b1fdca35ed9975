package macro

import "testing"

func TestSummarize_MaleModerateMaintain(t *testing.T) {
	plan, err := Compute(makeProfile(Male, 25, 170, 70, Moderate, Maintain))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := Summarize(plan)
	want := Summary{
		GoalLabel:       "Maintenance",
		CaloriesPerMeal: 527,
		Protein:         MacroShare{Grams: 140, Kcal: 560, Percent: 21},
		Carbs:           MacroShare{Grams: 341, Kcal: 1364, Percent: 52},
		Fat:             MacroShare{Grams: 79, Kcal: 711, Percent: 27},
		WaterLiters:     2,
		FiberG:          37,
	}
	if got != want {
		t.Errorf("Summarize() = %+v, want %+v", got, want)
	}
}

func TestGoalLabel(t *testing.T) {
	cases := map[Goal]string{
		Lose:     "Weight Loss",
		Gain:     "Weight Gain",
		Maintain: "Maintenance",
		"cut":    "Maintenance",
	}
	for goal, want := range cases {
		if got := GoalLabel(goal); got != want {
			t.Errorf("GoalLabel(%q) = %q, want %q", goal, got, want)
		}
	}
}

// TestSummarize_ZeroCalories guards the percentage and per-meal divisions.
func TestSummarize_ZeroCalories(t *testing.T) {
	s := Summarize(Plan{ProteinG: 10, FatG: 5})
	if s.Protein.Percent != 0 || s.Fat.Percent != 0 || s.CaloriesPerMeal != 0 {
		t.Errorf("expected zero percentages and per-meal, got %+v", s)
	}
	if s.Protein.Kcal != 40 || s.Fat.Kcal != 45 {
		t.Errorf("kcal = %d/%d, want 40/45", s.Protein.Kcal, s.Fat.Kcal)
	}
}
