package macro

import (
	"math"
	"strconv"
	"strings"
)

// RawProfile holds the form inputs as submitted text.
type RawProfile struct {
	Gender        string
	Height        string
	Weight        string
	Age           string
	ActivityLevel string
	Goal          string
}

// ParseProfile checks that every field is present and parses the numeric
// ones. Gender, activity level and goal are normalised to lower case but not
// checked against their enums; Compute does that.
func ParseProfile(r RawProfile) (Profile, error) {
	fields := []struct{ name, value string }{
		{"gender", r.Gender},
		{"height_cm", r.Height},
		{"weight_kg", r.Weight},
		{"age_years", r.Age},
		{"activity_level", r.ActivityLevel},
		{"goal", r.Goal},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return Profile{}, inputError(ErrMissingField, f.name, "")
		}
	}

	height, err := parsePositive("height_cm", r.Height)
	if err != nil {
		return Profile{}, err
	}
	weight, err := parsePositive("weight_kg", r.Weight)
	if err != nil {
		return Profile{}, err
	}
	age, err := parsePositive("age_years", r.Age)
	if err != nil {
		return Profile{}, err
	}
	// Age is whole years; "25.5" is rejected rather than truncated.
	if age != math.Trunc(age) {
		return Profile{}, inputError(ErrInvalidNumericInput, "age_years", strings.TrimSpace(r.Age))
	}

	return Profile{
		Gender:        Gender(normalize(r.Gender)),
		HeightCM:      height,
		WeightKG:      weight,
		AgeYears:      int(age),
		ActivityLevel: ActivityLevel(normalize(r.ActivityLevel)),
		Goal:          Goal(normalize(r.Goal)),
	}, nil
}

func parsePositive(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !inRange(v) {
		return 0, inputError(ErrInvalidNumericInput, field, s)
	}
	return v, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
