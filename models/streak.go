package models

import "time"

// StreakRecord is the single per-user streak state. LastLogDate is nil when
// no meal has ever been logged (or after reconciliation wiped a broken
// streak). Invariant: LongestStreak >= CurrentStreak.
type StreakRecord struct {
	ID            uint       `json:"-" gorm:"primaryKey"`
	CurrentStreak int        `json:"current_streak"`
	LongestStreak int        `json:"longest_streak"`
	LastLogDate   *time.Time `json:"last_log_date"`
	UpdatedAt     time.Time  `json:"-"`
}
