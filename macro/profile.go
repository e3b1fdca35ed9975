package macro

// Gender selects the Harris-Benedict coefficient set.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ActivityLevel keys the TDEE multiplier table.
type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	Active     ActivityLevel = "active"
	VeryActive ActivityLevel = "very_active"
)

// Goal adjusts target calories. The set is open: anything other than Lose or
// Gain is treated as maintenance.
type Goal string

const (
	Lose     Goal = "lose"
	Maintain Goal = "maintain"
	Gain     Goal = "gain"
)

// Genders lists the supported gender values in display order.
var Genders = []Gender{Male, Female}

// Goals lists the goal values a form should offer.
var Goals = []Goal{Lose, Maintain, Gain}

// Profile is a fully parsed set of biometric inputs (metric units).
type Profile struct {
	Gender        Gender        `json:"gender"`
	HeightCM      float64       `json:"height_cm"`
	WeightKG      float64       `json:"weight_kg"`
	AgeYears      int           `json:"age_years"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Goal          Goal          `json:"goal"`
}

// Plan is the daily nutrition target derived from a Profile. WeightKG,
// ActivityLevel and Goal are echoed back for display.
type Plan struct {
	Calories      int           `json:"calories"`
	ProteinG      int           `json:"protein_g"`
	CarbsG        int           `json:"carbs_g"`
	FatG          int           `json:"fat_g"`
	MealsPerDay   int           `json:"meals_per_day"`
	BMR           int           `json:"bmr"`
	TDEE          int           `json:"tdee"`
	WeightKG      float64       `json:"weight_kg"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Goal          Goal          `json:"goal"`
}
