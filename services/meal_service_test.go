package services

import (
	"context"
	"testing"
	"time"

	"mealtrack/models"
)

type memMealRepo struct {
	meals []models.MealRecord
	err   error
}

func (r *memMealRepo) Insert(_ context.Context, meal models.MealRecord) error {
	if r.err != nil {
		return r.err
	}
	r.meals = append(r.meals, meal)
	return nil
}

func (r *memMealRepo) Remove(_ context.Context, id string) error {
	for i, m := range r.meals {
		if m.ID == id {
			r.meals = append(r.meals[:i], r.meals[i+1:]...)
			return nil
		}
	}
	return ErrMealNotFound
}

func (r *memMealRepo) ListAll(context.Context) ([]models.MealRecord, error) {
	return r.meals, nil
}

func (r *memMealRepo) ListRange(_ context.Context, from, to time.Time) ([]models.MealRecord, error) {
	var out []models.MealRecord
	for _, m := range r.meals {
		if !m.Date.Before(from) && !m.Date.After(to) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMealRepo) ListRecent(_ context.Context, limit int) ([]models.MealRecord, error) {
	if len(r.meals) <= limit {
		return r.meals, nil
	}
	return r.meals[len(r.meals)-limit:], nil
}

type stubBroadcaster struct {
	events []string
}

func (b *stubBroadcaster) Broadcast(kind string, _ any) {
	b.events = append(b.events, kind)
}

func TestLogMealNormalizesAndAdvancesStreak(t *testing.T) {
	repo := &memMealRepo{}
	rt := &stubBroadcaster{}
	svc := NewMealService(repo, NewStreakService(&memStreakStore{}), rt)

	logged := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.Local)
	meal, streak, err := svc.LogMeal(context.Background(), MealInput{
		Food:     "Mystery Bowl",
		Calories: -120,
		MealType: "brunch",
		Date:     logged,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if meal.ID == "" {
		t.Fatal("store must assign an id")
	}
	if meal.Calories != 0 {
		t.Fatalf("negative calories should clamp to 0, got %d", meal.Calories)
	}
	if meal.MealType != models.MealTypeOther {
		t.Fatalf("unknown meal type should normalize to other, got %q", meal.MealType)
	}
	if meal.Method != models.MethodManual {
		t.Fatalf("missing method should default to manual, got %q", meal.Method)
	}
	if streak.CurrentStreak != 1 {
		t.Fatalf("streak after first log = %#v", streak)
	}
	if len(repo.meals) != 1 {
		t.Fatalf("expected 1 persisted meal, got %d", len(repo.meals))
	}
	if len(rt.events) != 1 || rt.events[0] != "stats.updated" {
		t.Fatalf("broadcast events = %#v", rt.events)
	}
}

func TestDeleteMealBroadcastsAndReportsMissing(t *testing.T) {
	repo := &memMealRepo{}
	rt := &stubBroadcaster{}
	svc := NewMealService(repo, NewStreakService(&memStreakStore{}), rt)

	meal, _, err := svc.LogMeal(context.Background(), MealInput{Food: "Toast", Calories: 180})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.DeleteMeal(context.Background(), meal.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(repo.meals) != 0 {
		t.Fatalf("meal not removed: %#v", repo.meals)
	}
	if len(rt.events) != 2 {
		t.Fatalf("expected log + delete broadcasts, got %#v", rt.events)
	}

	if err := svc.DeleteMeal(context.Background(), meal.ID); err != ErrMealNotFound {
		t.Fatalf("expected ErrMealNotFound, got %v", err)
	}
}

func TestLogMealDefaultsDateToNow(t *testing.T) {
	repo := &memMealRepo{}
	svc := NewMealService(repo, NewStreakService(&memStreakStore{}), nil)

	before := time.Now()
	meal, _, err := svc.LogMeal(context.Background(), MealInput{Food: "Snack Bar", Calories: 190})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meal.Date.Before(before) || meal.Date.After(time.Now()) {
		t.Fatalf("date not defaulted to now: %v", meal.Date)
	}
}
