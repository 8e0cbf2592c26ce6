package services

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"

	"mealtrack/models"
)

// ErrEmptyCatalog is returned by Scan when no foods are seeded.
var ErrEmptyCatalog = errors.New("food catalog is empty")

// FoodRepository is the persistence collaborator for the food catalog.
type FoodRepository interface {
	Search(ctx context.Context, query string, limit int) ([]models.FoodItem, error)
	ListAll(ctx context.Context) ([]models.FoodItem, error)
}

type FoodService struct {
	repo FoodRepository
}

func NewFoodService(repo FoodRepository) *FoodService {
	return &FoodService{repo: repo}
}

// Search finds catalog entries by name substring.
func (s *FoodService) Search(ctx context.Context, query string, limit int) ([]models.FoodItem, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.Search(ctx, query, limit)
}

// Scan simulates barcode recognition: the barcode hashes to a stable index
// into the catalog, so the same barcode always resolves to the same food.
// There is no real recognition backend.
func (s *FoodService) Scan(ctx context.Context, barcode string) (*models.FoodItem, error) {
	if barcode == "" {
		return nil, fmt.Errorf("barcode is required")
	}

	foods, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(foods) == 0 {
		return nil, ErrEmptyCatalog
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(barcode))
	item := foods[int(h.Sum32())%len(foods)]
	return &item, nil
}
