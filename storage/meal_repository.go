package storage

import (
	"context"
	"time"

	"gorm.io/gorm"

	"mealtrack/models"
	"mealtrack/services"
)

// MealRepository persists the meal log in the local database.
type MealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) *MealRepository {
	return &MealRepository{db: db}
}

func (r *MealRepository) Insert(ctx context.Context, meal models.MealRecord) error {
	return r.db.WithContext(ctx).Create(&meal).Error
}

func (r *MealRepository) Remove(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.MealRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return services.ErrMealNotFound
	}
	return nil
}

func (r *MealRepository) ListAll(ctx context.Context) ([]models.MealRecord, error) {
	var meals []models.MealRecord
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&meals).Error
	return meals, err
}

func (r *MealRepository) ListRange(ctx context.Context, from, to time.Time) ([]models.MealRecord, error) {
	var meals []models.MealRecord
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date DESC").
		Find(&meals).Error
	return meals, err
}

func (r *MealRepository) ListRecent(ctx context.Context, limit int) ([]models.MealRecord, error) {
	var meals []models.MealRecord
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}

var _ services.MealRepository = (*MealRepository)(nil)
