package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"mealtrack/models"
)

// ExportService renders the meal log as CSV or JSON for download. Export is
// a premium feature, gated at the route layer.
type ExportService struct{}

func NewExportService() *ExportService { return &ExportService{} }

var exportHeader = []string{"id", "food", "calories", "protein_g", "carbs_g", "fat_g", "meal_type", "method", "date"}

// ExportCSV writes one row per meal, oldest first.
func (s *ExportService) ExportCSV(meals []models.MealRecord) ([]byte, error) {
	sorted := sortedByDate(meals)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, m := range sorted {
		row := []string{
			m.ID,
			m.Food,
			strconv.Itoa(m.Calories),
			formatGrams(m.Macros.Protein),
			formatGrams(m.Macros.Carbs),
			formatGrams(m.Macros.Fat),
			m.MealType,
			m.Method,
			m.Date.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

type exportDay struct {
	Date     string  `json:"date"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein_g"`
	Carbs    float64 `json:"carbs_g"`
	Fat      float64 `json:"fat_g"`
}

type exportDocument struct {
	ExportedAt time.Time           `json:"exported_at"`
	Meals      []models.MealRecord `json:"meals"`
	DayTotals  []exportDay         `json:"day_totals"`
}

// ExportJSON includes the raw meal log plus per-day totals.
func (s *ExportService) ExportJSON(meals []models.MealRecord, now time.Time) ([]byte, error) {
	sorted := sortedByDate(meals)

	perDay := map[string]*exportDay{}
	for _, m := range sorted {
		if m.Date.IsZero() {
			continue
		}
		key := m.Date.Format("2006-01-02")
		day, ok := perDay[key]
		if !ok {
			day = &exportDay{Date: key}
			perDay[key] = day
		}
		if m.Calories > 0 {
			day.Calories += m.Calories
		}
		day.Protein += m.Macros.Protein
		day.Carbs += m.Macros.Carbs
		day.Fat += m.Macros.Fat
	}

	days := make([]exportDay, 0, len(perDay))
	for _, d := range perDay {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	doc := exportDocument{ExportedAt: now, Meals: sorted, DayTotals: days}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return out, nil
}

func sortedByDate(meals []models.MealRecord) []models.MealRecord {
	out := make([]models.MealRecord, len(meals))
	copy(out, meals)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func formatGrams(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
