package main

import "lg/macro-tracker-api/macro"

/* ─── Request / Response types ───────────────────────────────────────── */

// calculateRequest is the request body for POST /api/macros/calculate.
// binding:"required" is the presence check the form used to do client-side;
// numeric range and enum checks belong to macro.Compute. Numbers are pointers
// so an explicit 0 is distinguishable from an absent field.
type calculateRequest struct {
	Gender        string   `json:"gender"         binding:"required"`
	HeightCM      *float64 `json:"height_cm"      binding:"required"`
	WeightKG      *float64 `json:"weight_kg"      binding:"required"`
	AgeYears      *int     `json:"age_years"      binding:"required"`
	ActivityLevel string   `json:"activity_level" binding:"required"`
	Goal          string   `json:"goal"           binding:"required"`
}

// profile freezes the request into the engine's immutable input value.
// Binding has already guaranteed the pointers are non-nil.
func (r calculateRequest) profile() macro.Profile {
	return macro.Profile{
		Gender:        macro.Gender(r.Gender),
		HeightCM:      *r.HeightCM,
		WeightKG:      *r.WeightKG,
		AgeYears:      *r.AgeYears,
		ActivityLevel: macro.ActivityLevel(r.ActivityLevel),
		Goal:          macro.Goal(r.Goal),
	}
}

// calculateResponse is the response body for POST /api/macros/calculate.
type calculateResponse struct {
	Plan    macro.Plan    `json:"plan"`
	Summary macro.Summary `json:"summary"`
}

// goalOption is one entry of the goal select.
type goalOption struct {
	Value macro.Goal `json:"value"`
	Label string     `json:"label"`
}

// optionsResponse is the response body for GET /api/macros/options.
type optionsResponse struct {
	Genders        []macro.Gender       `json:"genders"`
	ActivityLevels []macro.ActivityInfo `json:"activity_levels"`
	Goals          []goalOption         `json:"goals"`
}
