package fitness

// WorkoutPlanParams are the caller-supplied parameters for the workout plan
// operations. Every field is optional; the jsonschema tags double as the
// MCP tool input schema descriptions.
type WorkoutPlanParams struct {
	Goal              string   `json:"goal,omitempty" jsonschema:"Fitness goal, e.g. weight_loss, muscle_gain, endurance"`
	FitnessLevel      string   `json:"fitness_level,omitempty" jsonschema:"Current fitness level: beginner, intermediate or advanced"`
	Preferences       []string `json:"preferences,omitempty" jsonschema:"Exercise preferences, e.g. cardio, strength_training"`
	HealthConditions  []string `json:"health_conditions,omitempty" jsonschema:"Health conditions to consider, e.g. knee_injury"`
	DaysPerWeek       int      `json:"days_per_week,omitempty" jsonschema:"Number of workout days per week (1-7)"`
	SessionDuration   int      `json:"session_duration,omitempty" jsonschema:"Duration of each session in minutes (15-180)"`
	PlanDurationWeeks int      `json:"plan_duration_weeks,omitempty" jsonschema:"Duration of the plan in weeks (1-52)"`
	Lang              string   `json:"lang,omitempty" jsonschema:"Language code, default en"`
}

// CustomWorkoutPlanParams extends the workout plan parameters with
// additional custom goals.
type CustomWorkoutPlanParams struct {
	WorkoutPlanParams
	CustomGoals []string `json:"custom_goals,omitempty" jsonschema:"Additional custom goals"`
}

// withDefaults substitutes the per-operation defaults for absent fields.
func (p WorkoutPlanParams) withDefaults() WorkoutPlanParams {
	p.Goal = strOr(p.Goal, defaultWorkoutGoal)
	p.FitnessLevel = strOr(p.FitnessLevel, defaultFitnessLevel)
	p.Preferences = listOr(p.Preferences, []string{"mixed"})
	p.HealthConditions = listOr(p.HealthConditions, []string{})
	p.DaysPerWeek = intOr(p.DaysPerWeek, defaultDaysPerWeek)
	p.SessionDuration = intOr(p.SessionDuration, defaultSessionDuration)
	p.PlanDurationWeeks = intOr(p.PlanDurationWeeks, defaultPlanDurationWeeks)
	p.Lang = strOr(p.Lang, defaultLang)
	return p
}

// validate applies the hard range checks. Must be called after withDefaults.
func (p WorkoutPlanParams) validate() error {
	if err := checkIntRange("days_per_week", p.DaysPerWeek, minDaysPerWeek, maxDaysPerWeek, ""); err != nil {
		return err
	}
	if err := checkIntRange("session_duration", p.SessionDuration, minSessionDuration, maxSessionDuration, "minutes"); err != nil {
		return err
	}
	return checkIntRange("plan_duration_weeks", p.PlanDurationWeeks, minPlanDurationWeeks, maxPlanDurationWeeks, "weeks")
}

// payload builds the outbound request body. The two schedule fields are
// nested under "schedule" per the upstream contract.
func (p WorkoutPlanParams) payload() map[string]any {
	return map[string]any{
		"goal":              p.Goal,
		"fitness_level":     p.FitnessLevel,
		"preferences":       p.Preferences,
		"health_conditions": p.HealthConditions,
		"schedule": map[string]any{
			"days_per_week":    p.DaysPerWeek,
			"session_duration": p.SessionDuration,
		},
		"plan_duration_weeks": p.PlanDurationWeeks,
		"lang":                p.Lang,
	}
}

func (p CustomWorkoutPlanParams) withDefaults() CustomWorkoutPlanParams {
	p.WorkoutPlanParams = p.WorkoutPlanParams.withDefaults()
	p.CustomGoals = listOr(p.CustomGoals, []string{})
	return p
}

func (p CustomWorkoutPlanParams) payload() map[string]any {
	out := p.WorkoutPlanParams.payload()
	out["custom_goals"] = p.CustomGoals
	return out
}
