package storage

import (
	"errors"

	"gorm.io/gorm"

	"mealtrack/models"
	"mealtrack/services"
)

// streakRowID pins the singleton streak record to one row.
const streakRowID = 1

// StreakRepository persists the single streak record.
type StreakRepository struct {
	db *gorm.DB
}

func NewStreakRepository(db *gorm.DB) *StreakRepository {
	return &StreakRepository{db: db}
}

// Get returns the streak record, or the zero-state record when none has
// been saved yet (first app use).
func (r *StreakRepository) Get() (models.StreakRecord, error) {
	var rec models.StreakRecord
	err := r.db.First(&rec, streakRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.StreakRecord{ID: streakRowID}, nil
	}
	if err != nil {
		return models.StreakRecord{}, err
	}
	return rec, nil
}

func (r *StreakRepository) Save(rec models.StreakRecord) error {
	rec.ID = streakRowID
	return r.db.Save(&rec).Error
}

var _ services.StreakStore = (*StreakRepository)(nil)
