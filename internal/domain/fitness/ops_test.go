package fitness

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gymcoach/gymcoach/internal/infra/fitnessapi"
)

func TestOperations_UpstreamStatusFailure_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewService(fitnessapi.NewClient(srv.URL, "test-host", "test-key"), nil)
	res := svc.GenerateWorkoutPlan(context.Background(), WorkoutPlanParams{})

	if res["status"] != StatusAPIError {
		t.Fatalf("status = %v, want api_error", res["status"])
	}
	msg, _ := res["error"].(string)
	if !strings.Contains(msg, "status 502") {
		t.Errorf("error = %q, should include the upstream status code", msg)
	}
}

func TestOperations_Timeout_APIErrorWithFixedMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	api := fitnessapi.NewClient(srv.URL, "test-host", "test-key",
		fitnessapi.WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond}))
	svc := NewService(api, nil)
	res := svc.NutritionAdvice(context.Background(), NutritionAdviceParams{})

	if res["status"] != StatusAPIError {
		t.Fatalf("status = %v, want api_error", res["status"])
	}
	if res["error"] != "API request timed out. Please try again." {
		t.Errorf("error = %q, want the fixed timeout message", res["error"])
	}
}

func TestOperations_MissingCredential_APIErrorBeforeDispatch(t *testing.T) {
	t.Parallel()

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	svc := NewService(fitnessapi.NewClient(srv.URL, "test-host", ""), nil)

	for name, res := range map[string]Result{
		"workout":   svc.GenerateWorkoutPlan(context.Background(), WorkoutPlanParams{}),
		"custom":    svc.CustomWorkoutPlan(context.Background(), CustomWorkoutPlanParams{}),
		"nutrition": svc.NutritionAdvice(context.Background(), NutritionAdviceParams{}),
		"exercise":  svc.ExerciseDetail(context.Background(), ExerciseDetailParams{ExerciseName: "squats"}),
	} {
		if res["status"] != StatusAPIError {
			t.Errorf("%s: status = %v, want api_error", name, res["status"])
		}
		msg, _ := res["error"].(string)
		if !strings.Contains(msg, "API key not configured") {
			t.Errorf("%s: error = %q, should name the missing credential", name, msg)
		}
	}
	if calls != 0 {
		t.Errorf("expected no outbound requests without a credential, got %d", calls)
	}
}

func TestOperations_SuccessIsPassThrough(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"plan":{"week_1":["push day"]},"meta":{"cached":false}}`)) //nolint:errcheck
	}))
	defer srv.Close()

	svc := NewService(fitnessapi.NewClient(srv.URL, "test-host", "test-key"), nil)
	res := svc.GenerateWorkoutPlan(context.Background(), WorkoutPlanParams{})

	// No status field is injected into successful pass-through results.
	if _, ok := res["status"]; ok {
		t.Errorf("success result must not carry a status field: %v", res)
	}
	if _, ok := res["plan"]; !ok {
		t.Errorf("upstream body not passed through: %v", res)
	}
}
