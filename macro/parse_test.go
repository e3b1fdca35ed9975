package macro

import (
	"errors"
	"testing"
)

func validRaw() RawProfile {
	return RawProfile{
		Gender:        "male",
		Height:        "170",
		Weight:        "70",
		Age:           "25",
		ActivityLevel: "moderate",
		Goal:          "maintain",
	}
}

func TestParseProfile_Valid(t *testing.T) {
	raw := RawProfile{
		Gender:        " Female ",
		Height:        "160.5",
		Weight:        " 60 ",
		Age:           "30",
		ActivityLevel: "VERY_ACTIVE",
		Goal:          "Lose",
	}
	p, err := ParseProfile(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Profile{
		Gender:        Female,
		HeightCM:      160.5,
		WeightKG:      60,
		AgeYears:      30,
		ActivityLevel: VeryActive,
		Goal:          Lose,
	}
	if p != want {
		t.Errorf("ParseProfile() = %+v, want %+v", p, want)
	}
}

// TestParseProfile_FeedsCompute checks that parsed text produces the same plan
// as the equivalent typed profile.
func TestParseProfile_FeedsCompute(t *testing.T) {
	p, err := ParseProfile(validRaw())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	plan, err := Compute(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Calories != 2635 || plan.MealsPerDay != 5 {
		t.Errorf("plan = %+v, want calories 2635 and 5 meals", plan)
	}
}

func TestParseProfile_Errors(t *testing.T) {
	cases := []struct {
		name  string
		mutFn func(r *RawProfile)
		want  error
		field string
	}{
		{"blank gender", func(r *RawProfile) { r.Gender = "" }, ErrMissingField, "gender"},
		{"whitespace height", func(r *RawProfile) { r.Height = "   " }, ErrMissingField, "height_cm"},
		{"blank goal", func(r *RawProfile) { r.Goal = "" }, ErrMissingField, "goal"},
		{"blank activity", func(r *RawProfile) { r.ActivityLevel = "" }, ErrMissingField, "activity_level"},
		{"text weight", func(r *RawProfile) { r.Weight = "heavy" }, ErrInvalidNumericInput, "weight_kg"},
		{"NaN weight", func(r *RawProfile) { r.Weight = "NaN" }, ErrInvalidNumericInput, "weight_kg"},
		{"Inf height", func(r *RawProfile) { r.Height = "+Inf" }, ErrInvalidNumericInput, "height_cm"},
		{"zero height", func(r *RawProfile) { r.Height = "0" }, ErrInvalidNumericInput, "height_cm"},
		{"negative age", func(r *RawProfile) { r.Age = "-3" }, ErrInvalidNumericInput, "age_years"},
		{"fractional age", func(r *RawProfile) { r.Age = "25.5" }, ErrInvalidNumericInput, "age_years"},
		{"huge age", func(r *RawProfile) { r.Age = "1e12" }, ErrInvalidNumericInput, "age_years"},
		{"huge weight", func(r *RawProfile) { r.Weight = "1e300" }, ErrInvalidNumericInput, "weight_kg"},
		{"huge height", func(r *RawProfile) { r.Height = "1000001" }, ErrInvalidNumericInput, "height_cm"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := validRaw()
			tc.mutFn(&raw)
			_, err := ParseProfile(raw)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			var ie *InputError
			if !errors.As(err, &ie) || ie.Field != tc.field {
				t.Errorf("err = %v, want field %q", err, tc.field)
			}
		})
	}
}

// TestParseProfile_EnumsLeftToCompute verifies unknown enum text parses
// cleanly and is rejected later by Compute.
func TestParseProfile_EnumsLeftToCompute(t *testing.T) {
	raw := validRaw()
	raw.Gender = "robot"
	p, err := ParseProfile(raw)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, err := Compute(p); !IsInvalidGender(err) {
		t.Errorf("Compute err = %v, want ErrInvalidGender", err)
	}
}

func TestInputError_Message(t *testing.T) {
	err := inputError(ErrInvalidActivityLevel, "activity_level", "extreme")
	want := `macro: invalid activity level: activity_level="extreme"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	err = inputError(ErrMissingField, "goal", "")
	if err.Error() != "macro: missing field: goal" {
		t.Errorf("Error() = %q", err.Error())
	}
}
