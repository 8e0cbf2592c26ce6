package main

import (
	"mealtrack/config"
	"mealtrack/controllers"
	"mealtrack/models"
	"mealtrack/pkg/logger"
	"mealtrack/routes"
	"mealtrack/services"
	"mealtrack/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New("mealtrack", cfg.IsDevelopment)
	defer log.Sync()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalw("database init failed", "error", err)
	}

	mealRepo := storage.NewMealRepository(db)
	streakRepo := storage.NewStreakRepository(db)
	foodRepo := storage.NewFoodRepository(db)

	if err := foodRepo.Seed(starterCatalog()); err != nil {
		log.Fatalw("food catalog seed failed", "error", err)
	}

	hub := services.NewRealtimeHub()
	streakSvc := services.NewStreakService(streakRepo)
	mealSvc := services.NewMealService(mealRepo, streakSvc, hub)
	statsSvc := services.NewStatsService(mealRepo, streakSvc, log)
	statsSvc.SetTopFoodsLimit(cfg.TopFoodsLimit)
	foodSvc := services.NewFoodService(foodRepo)
	subsSvc := services.NewSubscriptionService(cfg.EntitlementSecret)
	exportSvc := services.NewExportService()

	r := routes.SetupRouter(routes.Controllers{
		Meals:         controllers.NewMealController(mealSvc),
		Stats:         controllers.NewStatsController(statsSvc, streakSvc),
		Foods:         controllers.NewFoodController(foodSvc),
		Subscriptions: controllers.NewSubscriptionController(subsSvc),
		Exports:       controllers.NewExportController(mealSvc, exportSvc),
		Realtime:      controllers.NewRealtimeController(hub),
		SubsSvc:       subsSvc,
	})

	log.Infow("listening", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}

// starterCatalog is the seed data the mocked barcode scan resolves against.
func starterCatalog() []models.FoodItem {
	return []models.FoodItem{
		{Name: "Apple", Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3, Category: "fruit"},
		{Name: "Banana", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4, Category: "fruit"},
		{Name: "Grilled Chicken Breast", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Category: "protein"},
		{Name: "Brown Rice", Calories: 216, Protein: 5, Carbs: 45, Fat: 1.8, Category: "grain"},
		{Name: "Greek Yogurt", Calories: 100, Protein: 17, Carbs: 6, Fat: 0.7, Category: "dairy"},
		{Name: "Oatmeal", Calories: 158, Protein: 6, Carbs: 27, Fat: 3.2, Category: "grain"},
		{Name: "Caesar Salad", Calories: 184, Protein: 5, Carbs: 10, Fat: 14, Category: "salad"},
		{Name: "Cheese Pizza Slice", Calories: 285, Protein: 12, Carbs: 36, Fat: 10, Category: "fast food"},
		{Name: "Scrambled Eggs", Calories: 140, Protein: 12, Carbs: 1, Fat: 10, Category: "protein"},
		{Name: "Peanut Butter Sandwich", Calories: 350, Protein: 12, Carbs: 38, Fat: 17, Category: "sandwich"},
	}
}
