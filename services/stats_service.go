package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mealtrack/models"
	"mealtrack/pkg/logger"
	"mealtrack/utils"
)

const defaultTopFoodsLimit = 5

// MealReader supplies the meal snapshot for one stats refresh. The snapshot
// is read once per fetch and treated as immutable for the duration of the
// computation.
type MealReader interface {
	ListAll(ctx context.Context) ([]models.MealRecord, error)
}

// StreakReader supplies the current streak record.
type StreakReader interface {
	Current() (models.StreakRecord, error)
}

// DerivedStats is recomputed from scratch on every fetch; it is never a
// source of truth, only a cacheable projection of the meal snapshot and
// streak record.
type DerivedStats struct {
	TodayCalories        int               `json:"today_calories"`
	WeekCalories         int               `json:"week_calories"`
	MonthCalories        int               `json:"month_calories"`
	WeekSeries           []DayCalories     `json:"week_series"`
	ByMealType           MealTypeBreakdown `json:"by_meal_type"`
	TopFoods             []FoodCount       `json:"top_foods"`
	AverageDailyCalories float64           `json:"average_daily_calories"`
	CurrentStreak        int               `json:"current_streak"`
	LongestStreak        int               `json:"longest_streak"`
	GeneratedAt          time.Time         `json:"generated_at"`
}

// StatsService orchestrates one stats refresh: fetch the snapshot, fan out
// the independent aggregations, assemble a DerivedStats, and cache it.
// Refreshes may overlap; the cache is whole-object replacement guarded by a
// sequence number so a slow stale refresh never clobbers a newer result.
type StatsService struct {
	meals         MealReader
	streaks       StreakReader
	log           *logger.Logger
	topFoodsLimit int

	mu        sync.Mutex
	seq       uint64
	cachedSeq uint64
	cached    *DerivedStats
}

func NewStatsService(meals MealReader, streaks StreakReader, log *logger.Logger) *StatsService {
	return &StatsService{
		meals:         meals,
		streaks:       streaks,
		log:           log,
		topFoodsLimit: defaultTopFoodsLimit,
	}
}

// SetTopFoodsLimit overrides the ranking size. Values <= 0 keep the default.
func (s *StatsService) SetTopFoodsLimit(n int) {
	if n > 0 {
		s.topFoodsLimit = n
	}
}

// Cached returns the last successfully computed stats, or nil.
func (s *StatsService) Cached() *DerivedStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached == nil {
		return nil
	}
	out := *s.cached
	return &out
}

// FetchStats performs one refresh cycle. On a storage read failure the
// previously cached stats are returned alongside the error, so the caller
// can keep showing stale-but-available numbers.
func (s *StatsService) FetchStats(ctx context.Context, now time.Time) (*DerivedStats, error) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	meals, err := s.meals.ListAll(ctx)
	if err != nil {
		return s.Cached(), fmt.Errorf("read meal snapshot: %w", err)
	}

	stats := &DerivedStats{GeneratedAt: now}

	// Each aggregate runs inside its own isolation boundary: a panic in one
	// leaves its field at the zero value and the rest of the fetch intact.
	s.compute("today_calories", func() {
		stats.TodayCalories = SumCaloriesInWindow(meals, utils.StartOfDay(now), utils.EndOfDay(now))
	})
	s.compute("week_calories", func() {
		stats.WeekCalories = SumCaloriesInWindow(meals, utils.StartOfWeek(now), utils.EndOfWeek(now))
	})
	s.compute("month_calories", func() {
		stats.MonthCalories = SumCaloriesInWindow(meals, utils.StartOfMonth(now), utils.EndOfMonth(now))
	})
	s.compute("week_series", func() {
		stats.WeekSeries = PerDayCaloriesForWeek(meals, now)
	})
	s.compute("by_meal_type", func() {
		stats.ByMealType = CaloriesByMealType(meals, now)
	})
	s.compute("top_foods", func() {
		stats.TopFoods = MostCommonFoods(meals, s.topFoodsLimit)
	})
	s.compute("average_daily", func() {
		stats.AverageDailyCalories = AverageDailyCalories(meals)
	})
	s.compute("streak", func() {
		rec, err := s.streaks.Current()
		if err != nil {
			s.log.Warnw("streak read failed, reporting zero streak", "error", err)
			return
		}
		stats.CurrentStreak = rec.CurrentStreak
		stats.LongestStreak = rec.LongestStreak
	})

	s.mu.Lock()
	if seq > s.cachedSeq {
		s.cached = stats
		s.cachedSeq = seq
	}
	s.mu.Unlock()

	return stats, nil
}

// CaloriesOnDate is the arbitrary-date variant of the day total.
func (s *StatsService) CaloriesOnDate(ctx context.Context, date time.Time) (int, error) {
	meals, err := s.meals.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("read meal snapshot: %w", err)
	}
	return SumCaloriesInWindow(meals, utils.StartOfDay(date), utils.EndOfDay(date)), nil
}

func (s *StatsService) compute(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Warnw("stats aggregate failed", "aggregate", name, "panic", r)
		}
	}()
	fn()
}
