package fitness

import (
	"context"
	"log/slog"

	"github.com/gymcoach/gymcoach/internal/infra/fitnessapi"
)

// Endpoint suffixes for the upstream API. The noqueue flag requests a
// synchronous response instead of a queued job.
const (
	endpointWorkoutPlan       = "/generateWorkoutPlan?noqueue=1"
	endpointCustomWorkoutPlan = "/customWorkoutPlan?noqueue=1"
	endpointNutritionAdvice   = "/nutritionAdvice?noqueue=1"
	endpointExerciseDetails   = "/exerciseDetails?noqueue=1"
)

// Service exposes the four tool operations. Each call is stateless:
// defaults, validation, one dispatch, result mapping. Nothing is shared
// between concurrent invocations.
type Service struct {
	api *fitnessapi.Client
	log *slog.Logger
}

// NewService creates a Service around the given API client. A nil logger
// falls back to slog.Default().
func NewService(api *fitnessapi.Client, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{api: api, log: logger}
}

// GenerateWorkoutPlan produces a workout plan from the caller's goals,
// level and schedule. Validation failures return a validation_error result
// without any upstream call.
func (s *Service) GenerateWorkoutPlan(ctx context.Context, params WorkoutPlanParams) Result {
	p := params.withDefaults()
	if err := p.validate(); err != nil {
		return resultFromError(err)
	}

	payload := p.payload()
	s.log.Info("generating workout plan", "payload", payload)

	body, err := s.api.Post(ctx, endpointWorkoutPlan, payload)
	if err != nil {
		s.log.Error("workout plan request failed", "error", err)
		return resultFromError(err)
	}
	return body
}

// CustomWorkoutPlan is GenerateWorkoutPlan with additional custom goals.
func (s *Service) CustomWorkoutPlan(ctx context.Context, params CustomWorkoutPlanParams) Result {
	p := params.withDefaults()
	if err := p.validate(); err != nil {
		return resultFromError(err)
	}

	payload := p.payload()
	s.log.Info("generating custom workout plan", "payload", payload)

	body, err := s.api.Post(ctx, endpointCustomWorkoutPlan, payload)
	if err != nil {
		s.log.Error("custom workout plan request failed", "error", err)
		return resultFromError(err)
	}
	return body
}

// NutritionAdvice produces nutrition advice for the caller's goal and
// weight targets.
func (s *Service) NutritionAdvice(ctx context.Context, params NutritionAdviceParams) Result {
	p := params.withDefaults()
	if err := p.validate(); err != nil {
		return resultFromError(err)
	}

	payload := p.payload()
	s.log.Info("getting nutrition advice", "payload", payload)

	body, err := s.api.Post(ctx, endpointNutritionAdvice, payload)
	if err != nil {
		s.log.Error("nutrition advice request failed", "error", err)
		return resultFromError(err)
	}
	return body
}

// ExerciseDetail looks up a named exercise.
func (s *Service) ExerciseDetail(ctx context.Context, params ExerciseDetailParams) Result {
	p := params.withDefaults()
	if err := p.validate(); err != nil {
		return resultFromError(err)
	}

	payload := p.payload()
	s.log.Info("getting exercise details", "payload", payload)

	body, err := s.api.Post(ctx, endpointExerciseDetails, payload)
	if err != nil {
		s.log.Error("exercise details request failed", "error", err)
		return resultFromError(err)
	}
	return body
}
