package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mealtrack/models"
	"mealtrack/services"
)

// FoodRepository persists the food catalog.
type FoodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{db: db}
}

func (r *FoodRepository) Search(ctx context.Context, query string, limit int) ([]models.FoodItem, error) {
	var foods []models.FoodItem
	err := r.db.WithContext(ctx).
		Where("name LIKE ?", "%"+query+"%").
		Order("name ASC").
		Limit(limit).
		Find(&foods).Error
	return foods, err
}

func (r *FoodRepository) ListAll(ctx context.Context) ([]models.FoodItem, error) {
	var foods []models.FoodItem
	err := r.db.WithContext(ctx).Order("id ASC").Find(&foods).Error
	return foods, err
}

// Seed inserts the starter catalog once. Existing entries are left alone.
func (r *FoodRepository) Seed(items []models.FoodItem) error {
	for _, item := range items {
		var existing models.FoodItem
		err := r.db.Where("name = ?", item.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := r.db.Create(&item).Error; err != nil {
			return err
		}
	}
	return nil
}

var _ services.FoodRepository = (*FoodRepository)(nil)
