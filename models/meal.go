package models

import (
	"time"
)

// Meal types. Anything unrecognized is bucketed as MealTypeOther.
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
	MealTypeOther     = "other"
)

// Provenance of a logged meal. Informational only.
const (
	MethodScan   = "scan"
	MethodManual = "manual"
)

// Macros holds nutrient mass in grams.
type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// MealRecord is one logged food-intake event. The ID is assigned by the
// store at creation time and never changes; the record itself is never
// edited in place, only deleted and recreated.
type MealRecord struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Food      string    `json:"food" gorm:"not null"`
	Calories  int       `json:"calories"`
	Macros    Macros    `json:"macros" gorm:"embedded;embeddedPrefix:macro_"`
	MealType  string    `json:"meal_type" gorm:"size:16;index"`
	Method    string    `json:"method" gorm:"size:16"`
	Date      time.Time `json:"date" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeMealType maps any unrecognized meal type to MealTypeOther.
func NormalizeMealType(t string) string {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return t
	default:
		return MealTypeOther
	}
}

// Normalize enforces the record invariants once, at the boundary where a
// meal enters the system: non-negative calories and macros, a recognized
// meal type, and a provenance tag. Downstream readers still must not assume
// this ran; the aggregation layer re-applies the same defaults on read.
func (m *MealRecord) Normalize() {
	if m.Calories < 0 {
		m.Calories = 0
	}
	if m.Macros.Protein < 0 {
		m.Macros.Protein = 0
	}
	if m.Macros.Carbs < 0 {
		m.Macros.Carbs = 0
	}
	if m.Macros.Fat < 0 {
		m.Macros.Fat = 0
	}
	m.MealType = NormalizeMealType(m.MealType)
	if m.Method != MethodScan {
		m.Method = MethodManual
	}
}
