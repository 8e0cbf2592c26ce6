package models

import "gorm.io/gorm"

// FoodItem is a catalog entry used by search and the mocked barcode scan.
type FoodItem struct {
	gorm.Model
	Name     string  `json:"name" gorm:"uniqueIndex;not null"`
	Calories int     `json:"calories"` // per typical serving
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Category string  `json:"category"`
}
