package services

import (
	"sort"
	"time"

	"mealtrack/models"
	"mealtrack/utils"
)

// Calorie aggregation over a meal snapshot. Every function here is pure,
// order-independent with respect to the snapshot, and tolerant of malformed
// records: negative calories count as zero and a zero Date never falls
// inside any window, so one bad meal degrades its own contribution instead
// of failing the whole computation.

// DayCalories is one entry of the weekly series.
type DayCalories struct {
	Day      string `json:"day"`
	Calories int    `json:"calories"`
}

// MealTypeBreakdown holds today's calories bucketed by meal type.
type MealTypeBreakdown struct {
	Breakfast int `json:"breakfast"`
	Lunch     int `json:"lunch"`
	Dinner    int `json:"dinner"`
	Snack     int `json:"snack"`
	Other     int `json:"other"`
}

// FoodCount is one row of the most-common-foods ranking.
type FoodCount struct {
	Food  string `json:"food"`
	Count int    `json:"count"`
}

func mealCalories(m models.MealRecord) int {
	if m.Calories < 0 {
		return 0
	}
	return m.Calories
}

func inWindow(m models.MealRecord, start, end time.Time) bool {
	if m.Date.IsZero() {
		return false
	}
	return !m.Date.Before(start) && !m.Date.After(end)
}

// SumCaloriesInWindow sums calories of meals whose date falls in
// [start, end], both bounds inclusive.
func SumCaloriesInWindow(meals []models.MealRecord, start, end time.Time) int {
	total := 0
	for _, m := range meals {
		if inWindow(m, start, end) {
			total += mealCalories(m)
		}
	}
	return total
}

// PerDayCaloriesForWeek returns exactly seven entries, Sunday first,
// covering the week containing ref.
func PerDayCaloriesForWeek(meals []models.MealRecord, ref time.Time) []DayCalories {
	labels := utils.DaysOfWeek()
	weekStart := utils.StartOfWeek(ref)

	out := make([]DayCalories, 0, len(labels))
	for i, label := range labels {
		day := weekStart.AddDate(0, 0, i)
		out = append(out, DayCalories{
			Day:      label,
			Calories: SumCaloriesInWindow(meals, day, utils.EndOfDay(day)),
		})
	}
	return out
}

// CaloriesByMealType buckets today's calories by meal type. Unrecognized
// types land in Other.
func CaloriesByMealType(meals []models.MealRecord, ref time.Time) MealTypeBreakdown {
	start, end := utils.StartOfDay(ref), utils.EndOfDay(ref)

	var b MealTypeBreakdown
	for _, m := range meals {
		if !inWindow(m, start, end) {
			continue
		}
		switch models.NormalizeMealType(m.MealType) {
		case models.MealTypeBreakfast:
			b.Breakfast += mealCalories(m)
		case models.MealTypeLunch:
			b.Lunch += mealCalories(m)
		case models.MealTypeDinner:
			b.Dinner += mealCalories(m)
		case models.MealTypeSnack:
			b.Snack += mealCalories(m)
		default:
			b.Other += mealCalories(m)
		}
	}
	return b
}

// MostCommonFoods ranks foods by occurrence count, descending, truncated to
// limit. Names are compared exactly: "Apple" and "apple" stay separate so
// user-entered casing is preserved. Ties keep first-seen input order.
// Records with an empty name are malformed and left out of the ranking.
func MostCommonFoods(meals []models.MealRecord, limit int) []FoodCount {
	if limit <= 0 {
		return []FoodCount{}
	}

	counts := make(map[string]int, len(meals))
	firstSeen := make(map[string]int, len(meals))
	for i, m := range meals {
		if m.Food == "" {
			continue
		}
		if _, ok := counts[m.Food]; !ok {
			firstSeen[m.Food] = i
		}
		counts[m.Food]++
	}

	ranked := make([]FoodCount, 0, len(counts))
	for food, n := range counts {
		ranked = append(ranked, FoodCount{Food: food, Count: n})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Food] < firstSeen[ranked[j].Food]
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// AverageDailyCalories averages per-day totals across the days that have at
// least one meal. Days without meals do not contribute a zero to the
// denominator. Returns 0 when the snapshot is empty.
func AverageDailyCalories(meals []models.MealRecord) float64 {
	perDay := make(map[string]int)
	for _, m := range meals {
		if m.Date.IsZero() {
			continue
		}
		perDay[m.Date.Format("2006-01-02")] += mealCalories(m)
	}
	if len(perDay) == 0 {
		return 0
	}

	total := 0
	for _, sum := range perDay {
		total += sum
	}
	return float64(total) / float64(len(perDay))
}
