package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lg/macro-tracker-api/macro"
)

// goalLabels are the select labels for each offered goal.
var goalLabels = map[macro.Goal]string{
	macro.Lose:     "Lose Weight",
	macro.Maintain: "Maintain Weight",
	macro.Gain:     "Gain Weight",
}

// health handles GET /api/health.
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// getMacroOptions returns the values the calculator form offers in its radio
// group and selects.
// GET /api/macros/options.
func (h *Handler) getMacroOptions(c *gin.Context) {
	goals := make([]goalOption, 0, len(macro.Goals))
	for _, g := range macro.Goals {
		goals = append(goals, goalOption{Value: g, Label: goalLabels[g]})
	}
	c.JSON(http.StatusOK, optionsResponse{
		Genders:        macro.Genders,
		ActivityLevels: macro.ActivityLevels,
		Goals:          goals,
	})
}

// calculateMacros computes a nutrition plan and its display summary.
// POST /api/macros/calculate. Missing fields are a 400; values the engine
// rejects are a 422 carrying an error code.
func (h *Handler) calculateMacros(c *gin.Context) {
	var body calculateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	plan, err := macro.Compute(body.profile())
	if err != nil {
		h.log.Debug("calculate rejected",
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err))
		code, msg := describeInputError(err)
		apiErrorCode(c, http.StatusUnprocessableEntity, code, msg)
		return
	}

	c.JSON(http.StatusOK, calculateResponse{Plan: plan, Summary: macro.Summarize(plan)})
}

// describeInputError maps engine errors to an API code and a message fit to
// show next to the form.
func describeInputError(err error) (code, message string) {
	var field string
	var ie *macro.InputError
	if errors.As(err, &ie) {
		field = ie.Field
	}
	switch {
	case macro.IsInvalidGender(err):
		return "invalid_gender", "gender must be one of: male, female"
	case macro.IsInvalidActivityLevel(err):
		return "invalid_activity_level", "activity_level must be one of: sedentary, light, moderate, active, very_active"
	case macro.IsInvalidNumericInput(err):
		return "invalid_numeric_input", field + " must be a positive number"
	default:
		return "invalid_input", "invalid input"
	}
}
