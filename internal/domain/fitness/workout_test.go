package fitness

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gymcoach/gymcoach/internal/infra/fitnessapi"
)

// newTestService returns a Service dispatching against a fake upstream, plus
// a pointer to the number of requests it received and the last decoded body.
func newTestService(t *testing.T) (*Service, *int, *map[string]any) {
	t.Helper()

	calls := 0
	lastBody := map[string]any{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewDecoder(r.Body).Decode(&lastBody)               //nolint:errcheck
		json.NewEncoder(w).Encode(map[string]any{"plan": "ok"}) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)

	api := fitnessapi.NewClient(srv.URL, "test-host", "test-key")
	return NewService(api, nil), &calls, &lastBody
}

func TestGenerateWorkoutPlan_Defaults(t *testing.T) {
	t.Parallel()

	svc, _, body := newTestService(t)
	res := svc.GenerateWorkoutPlan(context.Background(), WorkoutPlanParams{})

	if res["status"] != nil {
		t.Fatalf("expected pass-through success, got %v", res)
	}

	got := *body
	if got["goal"] != "general_fitness" {
		t.Errorf("goal = %v, want 'general_fitness'", got["goal"])
	}
	if got["fitness_level"] != "beginner" {
		t.Errorf("fitness_level = %v, want 'beginner'", got["fitness_level"])
	}
	if !reflect.DeepEqual(got["preferences"], []any{"mixed"}) {
		t.Errorf("preferences = %v, want [mixed]", got["preferences"])
	}
	if !reflect.DeepEqual(got["health_conditions"], []any{}) {
		t.Errorf("health_conditions = %v, want empty list, not null", got["health_conditions"])
	}
	if got["plan_duration_weeks"] != float64(4) {
		t.Errorf("plan_duration_weeks = %v, want 4", got["plan_duration_weeks"])
	}
	if got["lang"] != "en" {
		t.Errorf("lang = %v, want 'en'", got["lang"])
	}

	schedule, ok := got["schedule"].(map[string]any)
	if !ok {
		t.Fatalf("schedule = %v, want nested object", got["schedule"])
	}
	if schedule["days_per_week"] != float64(3) {
		t.Errorf("schedule.days_per_week = %v, want 3", schedule["days_per_week"])
	}
	if schedule["session_duration"] != float64(45) {
		t.Errorf("schedule.session_duration = %v, want 45", schedule["session_duration"])
	}
}

func TestGenerateWorkoutPlan_InBoundsAcceptedUnchanged(t *testing.T) {
	t.Parallel()

	svc, _, body := newTestService(t)
	svc.GenerateWorkoutPlan(context.Background(), WorkoutPlanParams{
		DaysPerWeek:       7,
		SessionDuration:   180,
		PlanDurationWeeks: 52,
	})

	got := *body
	schedule := got["schedule"].(map[string]any)
	if schedule["days_per_week"] != float64(7) {
		t.Errorf("days_per_week = %v, want 7 (upper bound is inclusive)", schedule["days_per_week"])
	}
	if schedule["session_duration"] != float64(180) {
		t.Errorf("session_duration = %v, want 180", schedule["session_duration"])
	}
	if got["plan_duration_weeks"] != float64(52) {
		t.Errorf("plan_duration_weeks = %v, want 52", got["plan_duration_weeks"])
	}
}

func TestGenerateWorkoutPlan_OutOfRange_NoRequestIssued(t *testing.T) {
	t.Parallel()

	svc, calls, _ := newTestService(t)
	res := svc.GenerateWorkoutPlan(context.Background(), WorkoutPlanParams{DaysPerWeek: 10})

	want := Result{
		"error":  "days_per_week must be between 1 and 7",
		"status": "validation_error",
	}
	if !reflect.DeepEqual(res, want) {
		t.Errorf("result = %v, want %v", res, want)
	}
	if *calls != 0 {
		t.Errorf("expected no outbound request, got %d", *calls)
	}
}

func TestGenerateWorkoutPlan_RangeErrorMessages(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	cases := []struct {
		name    string
		params  WorkoutPlanParams
		wantErr string
	}{
		{"days low", WorkoutPlanParams{DaysPerWeek: -1}, "days_per_week must be between 1 and 7"},
		{"session low", WorkoutPlanParams{SessionDuration: 14}, "session_duration must be between 15 and 180 minutes"},
		{"session high", WorkoutPlanParams{SessionDuration: 181}, "session_duration must be between 15 and 180 minutes"},
		{"weeks high", WorkoutPlanParams{PlanDurationWeeks: 53}, "plan_duration_weeks must be between 1 and 52 weeks"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := svc.GenerateWorkoutPlan(context.Background(), tc.params)
			if res["status"] != StatusValidationError {
				t.Fatalf("status = %v, want validation_error", res["status"])
			}
			if res["error"] != tc.wantErr {
				t.Errorf("error = %q, want %q", res["error"], tc.wantErr)
			}
		})
	}
}

func TestGenerateWorkoutPlan_BlankStringsTakeDefaults(t *testing.T) {
	t.Parallel()

	svc, _, body := newTestService(t)
	svc.GenerateWorkoutPlan(context.Background(), WorkoutPlanParams{
		Goal:         "   ",
		FitnessLevel: "\t",
	})

	got := *body
	if got["goal"] != "general_fitness" {
		t.Errorf("goal = %v, whitespace-only input should take the default", got["goal"])
	}
	if got["fitness_level"] != "beginner" {
		t.Errorf("fitness_level = %v, whitespace-only input should take the default", got["fitness_level"])
	}
}

func TestCustomWorkoutPlan_IncludesCustomGoals(t *testing.T) {
	t.Parallel()

	svc, _, body := newTestService(t)
	res := svc.CustomWorkoutPlan(context.Background(), CustomWorkoutPlanParams{
		CustomGoals: []string{"handstand", "5k_run"},
	})
	if res["status"] != nil {
		t.Fatalf("expected success, got %v", res)
	}

	got := *body
	if !reflect.DeepEqual(got["custom_goals"], []any{"handstand", "5k_run"}) {
		t.Errorf("custom_goals = %v, want [handstand 5k_run]", got["custom_goals"])
	}
	if _, ok := got["schedule"].(map[string]any); !ok {
		t.Errorf("schedule missing from custom plan payload: %v", got)
	}
}

func TestCustomWorkoutPlan_DefaultCustomGoalsEmptyList(t *testing.T) {
	t.Parallel()

	svc, _, body := newTestService(t)
	svc.CustomWorkoutPlan(context.Background(), CustomWorkoutPlanParams{})

	got := *body
	if !reflect.DeepEqual(got["custom_goals"], []any{}) {
		t.Errorf("custom_goals = %v, want empty list, not null", got["custom_goals"])
	}
}

func TestCustomWorkoutPlan_SharesRangeChecks(t *testing.T) {
	t.Parallel()

	svc, calls, _ := newTestService(t)
	res := svc.CustomWorkoutPlan(context.Background(), CustomWorkoutPlanParams{
		WorkoutPlanParams: WorkoutPlanParams{SessionDuration: 500},
	})

	if res["error"] != "session_duration must be between 15 and 180 minutes" {
		t.Errorf("error = %q, want the session_duration bound message", res["error"])
	}
	if *calls != 0 {
		t.Errorf("expected no outbound request, got %d", *calls)
	}
}
