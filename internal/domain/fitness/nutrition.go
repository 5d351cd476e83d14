package fitness

// NutritionAdviceParams are the caller-supplied parameters for the
// nutrition advice operation. Every field is optional.
type NutritionAdviceParams struct {
	Goal                string   `json:"goal,omitempty" jsonschema:"Nutrition goal: weight_loss, weight_gain or maintain_weight"`
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty" jsonschema:"Dietary restrictions, e.g. vegetarian, gluten_free"`
	CurrentWeight       float64  `json:"current_weight,omitempty" jsonschema:"Current weight in kg (30-300)"`
	TargetWeight        float64  `json:"target_weight,omitempty" jsonschema:"Target weight in kg (30-300), defaults to current weight"`
	DailyActivityLevel  string   `json:"daily_activity_level,omitempty" jsonschema:"Activity level: sedentary, light, moderate, active or very_active"`
	Lang                string   `json:"lang,omitempty" jsonschema:"Language code, default en"`
}

// withDefaults substitutes defaults for absent fields. The target weight
// defaults to the (already defaulted) current weight, and an activity level
// outside the known vocabulary is coerced to the default rather than
// rejected.
func (p NutritionAdviceParams) withDefaults() NutritionAdviceParams {
	p.Goal = strOr(p.Goal, defaultNutritionGoal)
	p.DietaryRestrictions = listOr(p.DietaryRestrictions, []string{})
	p.CurrentWeight = floatOr(p.CurrentWeight, defaultCurrentWeight)
	p.TargetWeight = floatOr(p.TargetWeight, p.CurrentWeight)
	p.DailyActivityLevel = strOr(p.DailyActivityLevel, defaultActivityLevel)
	if !validActivityLevels[p.DailyActivityLevel] {
		p.DailyActivityLevel = defaultActivityLevel
	}
	p.Lang = strOr(p.Lang, defaultLang)
	return p
}

// validate applies the hard weight range checks. Must be called after
// withDefaults.
func (p NutritionAdviceParams) validate() error {
	if err := checkWeightRange("current_weight", p.CurrentWeight); err != nil {
		return err
	}
	return checkWeightRange("target_weight", p.TargetWeight)
}

func (p NutritionAdviceParams) payload() map[string]any {
	return map[string]any{
		"goal":                 p.Goal,
		"dietary_restrictions": p.DietaryRestrictions,
		"current_weight":       p.CurrentWeight,
		"target_weight":        p.TargetWeight,
		"daily_activity_level": p.DailyActivityLevel,
		"lang":                 p.Lang,
	}
}
