package fitness

import (
	"fmt"
	"strings"
)

// Operation defaults. A zero value (0, "", nil or empty list, blank string)
// counts as absent and takes the default.
const (
	defaultWorkoutGoal       = "general_fitness"
	defaultFitnessLevel      = "beginner"
	defaultDaysPerWeek       = 3
	defaultSessionDuration   = 45
	defaultPlanDurationWeeks = 4

	defaultNutritionGoal = "maintain_weight"
	defaultCurrentWeight = 70.0
	defaultActivityLevel = "moderate"

	defaultLang = "en"
)

// Inclusive bounds for the hard range checks.
const (
	minDaysPerWeek, maxDaysPerWeek             = 1, 7
	minSessionDuration, maxSessionDuration     = 15, 180
	minPlanDurationWeeks, maxPlanDurationWeeks = 1, 52
	minWeightKg, maxWeightKg                   = 30.0, 300.0
)

// validActivityLevels is the soft enum for daily_activity_level. Unknown
// values coerce to the default instead of failing validation, unlike the
// numeric fields above which hard-reject.
var validActivityLevels = map[string]bool{
	"sedentary":   true,
	"light":       true,
	"moderate":    true,
	"active":      true,
	"very_active": true,
}

// strOr returns def when v is empty or whitespace-only, otherwise v trimmed.
func strOr(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}

// intOr returns def when v is zero.
func intOr(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// floatOr returns def when v is zero.
func floatOr(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// listOr returns def when v is nil or empty.
func listOr(v, def []string) []string {
	if len(v) == 0 {
		return def
	}
	return v
}

// checkIntRange returns an InvalidParamError naming the field and its bound
// when v falls outside [lo, hi]. unit is appended to the message ("", or
// e.g. "minutes").
func checkIntRange(field string, v, lo, hi int, unit string) error {
	if v >= lo && v <= hi {
		return nil
	}
	msg := fmt.Sprintf("%s must be between %d and %d", field, lo, hi)
	if unit != "" {
		msg += " " + unit
	}
	return &InvalidParamError{Message: msg}
}

// checkWeightRange is the float variant used for the body-weight fields.
func checkWeightRange(field string, v float64) error {
	if v >= minWeightKg && v <= maxWeightKg {
		return nil
	}
	return &InvalidParamError{
		Message: fmt.Sprintf("%s must be between %d and %d kg", field, int(minWeightKg), int(maxWeightKg)),
	}
}
