package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mealtrack/models"
)

// ErrMealNotFound is returned when a meal id does not exist in the store.
var ErrMealNotFound = errors.New("meal not found")

// MealRepository is the persistence collaborator for the meal log.
type MealRepository interface {
	Insert(ctx context.Context, meal models.MealRecord) error
	Remove(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]models.MealRecord, error)
	ListRange(ctx context.Context, from, to time.Time) ([]models.MealRecord, error)
	ListRecent(ctx context.Context, limit int) ([]models.MealRecord, error)
}

// Broadcaster pushes refresh events to connected clients after mutations.
type Broadcaster interface {
	Broadcast(kind string, payload any)
}

type MealService struct {
	repo    MealRepository
	streaks *StreakService
	rt      Broadcaster
}

func NewMealService(repo MealRepository, streaks *StreakService, rt Broadcaster) *MealService {
	return &MealService{repo: repo, streaks: streaks, rt: rt}
}

// MealInput is the request payload for logging a meal.
type MealInput struct {
	Food     string        `json:"food" binding:"required"`
	Calories int           `json:"calories"`
	Macros   models.Macros `json:"macros"`
	MealType string        `json:"meal_type"`
	Method   string        `json:"method"`
	Date     time.Time     `json:"date"`
}

// LogMeal normalizes and persists a meal, then advances the streak. The
// meal write is the optimistic source of truth: a streak failure is
// surfaced but does not roll the meal back.
func (s *MealService) LogMeal(ctx context.Context, in MealInput) (*models.MealRecord, models.StreakRecord, error) {
	if in.Date.IsZero() {
		in.Date = time.Now()
	}

	meal := models.MealRecord{
		ID:       uuid.NewString(),
		Food:     in.Food,
		Calories: in.Calories,
		Macros:   in.Macros,
		MealType: in.MealType,
		Method:   in.Method,
		Date:     in.Date,
	}
	meal.Normalize()

	if err := s.repo.Insert(ctx, meal); err != nil {
		return nil, models.StreakRecord{}, fmt.Errorf("insert meal: %w", err)
	}

	streak, err := s.streaks.OnMealLogged(in.Date)
	if err != nil {
		return &meal, models.StreakRecord{}, fmt.Errorf("advance streak: %w", err)
	}

	if s.rt != nil {
		s.rt.Broadcast("stats.updated", map[string]any{"meal_id": meal.ID})
	}
	return &meal, streak, nil
}

func (s *MealService) DeleteMeal(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return err
	}
	if s.rt != nil {
		s.rt.Broadcast("stats.updated", map[string]any{"meal_id": id, "deleted": true})
	}
	return nil
}

func (s *MealService) ListMeals(ctx context.Context) ([]models.MealRecord, error) {
	return s.repo.ListAll(ctx)
}

func (s *MealService) ListMealsByDateRange(ctx context.Context, from, to time.Time) ([]models.MealRecord, error) {
	return s.repo.ListRange(ctx, from, to)
}

func (s *MealService) ListRecentMeals(ctx context.Context, limit int) ([]models.MealRecord, error) {
	if limit <= 0 {
		limit = 3
	}
	return s.repo.ListRecent(ctx, limit)
}
