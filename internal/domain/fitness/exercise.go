package fitness

import "strings"

// ExerciseDetailParams are the parameters for the exercise lookup
// operation. The exercise name is the one required field in the tool
// surface.
type ExerciseDetailParams struct {
	ExerciseName string `json:"exercise_name,omitempty" jsonschema:"Name of the exercise to look up, e.g. push-ups, squats"`
	Lang         string `json:"lang,omitempty" jsonschema:"Language code, default en"`
}

func (p ExerciseDetailParams) withDefaults() ExerciseDetailParams {
	p.ExerciseName = strings.TrimSpace(p.ExerciseName)
	p.Lang = strOr(p.Lang, defaultLang)
	return p
}

// validate rejects a blank exercise name with a usage suggestion.
func (p ExerciseDetailParams) validate() error {
	if p.ExerciseName == "" {
		return &InvalidParamError{
			Message:    "Exercise name is required",
			Suggestion: "Please provide an exercise name (e.g., 'push-ups', 'squats', 'bench press')",
		}
	}
	return nil
}

func (p ExerciseDetailParams) payload() map[string]any {
	return map[string]any{
		"exercise_name": p.ExerciseName,
		"lang":          p.Lang,
	}
}
