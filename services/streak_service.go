package services

import (
	"fmt"
	"sync"
	"time"

	"mealtrack/models"
	"mealtrack/utils"
)

// StreakStore is the persistence collaborator for the streak record.
type StreakStore interface {
	Get() (models.StreakRecord, error)
	Save(models.StreakRecord) error
}

// StreakService serializes the two streak entry points against the same
// record. Both transitions read-then-write, so overlapping calls without
// the mutex could drop an update.
type StreakService struct {
	mu    sync.Mutex
	store StreakStore
}

func NewStreakService(store StreakStore) *StreakService {
	return &StreakService{store: store}
}

// AdvanceStreak applies the meal-added transition to rec. Calendar days are
// compared in the location of the stored last-log timestamp.
//
//   - first-ever log: streak starts at 1
//   - same calendar day: counters untouched, LastLogDate refreshed
//   - exactly the next calendar day: streak grows by 1
//   - anything else (gap >= 2 days, or now before the last log): reset to 1
//
// LongestStreak never decreases here.
func AdvanceStreak(rec models.StreakRecord, now time.Time) models.StreakRecord {
	if rec.LastLogDate == nil {
		rec.CurrentStreak = 1
		if rec.LongestStreak < 1 {
			rec.LongestStreak = 1
		}
		rec.LastLogDate = &now
		return rec
	}

	gap := utils.DaysBetween(*rec.LastLogDate, now)
	switch {
	case gap == 0:
		// Logging twice in one day must not double-increment.
	case gap == 1:
		rec.CurrentStreak++
		if rec.CurrentStreak > rec.LongestStreak {
			rec.LongestStreak = rec.CurrentStreak
		}
	default:
		rec.CurrentStreak = 1
	}
	rec.LastLogDate = &now
	return rec
}

// ReconcileStreak applies the app-foreground decay check: when more than one
// whole day has passed since the last log, the streak is broken. It never
// advances the streak and is idempotent.
//
// Quirk preserved from the product behavior: a broken streak also clears
// LastLogDate, so it becomes indistinguishable from "never logged".
func ReconcileStreak(rec models.StreakRecord, now time.Time) models.StreakRecord {
	if rec.LastLogDate == nil {
		return rec
	}
	if utils.DaysBetween(*rec.LastLogDate, now) > 1 {
		rec.CurrentStreak = 0
		rec.LastLogDate = nil
	}
	return rec
}

// OnMealLogged advances the persisted streak and returns the updated record.
func (s *StreakService) OnMealLogged(now time.Time) (models.StreakRecord, error) {
	return s.apply(func(rec models.StreakRecord) models.StreakRecord {
		return AdvanceStreak(rec, now)
	})
}

// Reconcile runs the foreground decay check against the persisted streak.
func (s *StreakService) Reconcile(now time.Time) (models.StreakRecord, error) {
	return s.apply(func(rec models.StreakRecord) models.StreakRecord {
		return ReconcileStreak(rec, now)
	})
}

// Current returns the persisted streak without modifying it.
func (s *StreakService) Current() (models.StreakRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, err := s.store.Get()
	if err != nil {
		return models.StreakRecord{}, fmt.Errorf("load streak: %w", err)
	}
	return rec, nil
}

func (s *StreakService) apply(transition func(models.StreakRecord) models.StreakRecord) (models.StreakRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.store.Get()
	if err != nil {
		return models.StreakRecord{}, fmt.Errorf("load streak: %w", err)
	}
	updated := transition(rec)
	if err := s.store.Save(updated); err != nil {
		return models.StreakRecord{}, fmt.Errorf("save streak: %w", err)
	}
	return updated, nil
}
