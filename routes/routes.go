package routes

import (
	"github.com/gin-gonic/gin"

	"mealtrack/controllers"
	"mealtrack/middlewares"
	"mealtrack/services"
)

// Controllers bundles the handler set wired by main.
type Controllers struct {
	Meals         *controllers.MealController
	Stats         *controllers.StatsController
	Foods         *controllers.FoodController
	Subscriptions *controllers.SubscriptionController
	Exports       *controllers.ExportController
	Realtime      *controllers.RealtimeController
	SubsSvc       *services.SubscriptionService
}

func SetupRouter(c Controllers) *gin.Engine {
	r := gin.Default()

	meals := r.Group("/meals")
	{
		meals.POST("", c.Meals.LogMeal)
		meals.GET("", c.Meals.ListMeals)
		meals.GET("/recent", c.Meals.ListRecentMeals)
		meals.DELETE("/:id", c.Meals.DeleteMeal)
	}

	stats := r.Group("/stats")
	{
		stats.GET("", c.Stats.GetStats)
		stats.GET("/day", c.Stats.GetCaloriesOnDate)
		stats.GET("/streak", c.Stats.GetStreak)
		stats.POST("/streak/reconcile", c.Stats.ReconcileStreak)
	}

	foods := r.Group("/foods")
	{
		foods.GET("/search", c.Foods.Search)
		foods.POST("/scan", c.Foods.Scan)
	}

	subs := r.Group("/subscription")
	{
		subs.POST("/activate", c.Subscriptions.Activate)
		subs.GET("/status", c.Subscriptions.Status)
	}

	export := r.Group("/export")
	export.Use(middlewares.PremiumMiddleware(c.SubsSvc))
	{
		export.GET("/csv", c.Exports.ExportCSV)
		export.GET("/json", c.Exports.ExportJSON)
	}

	r.GET("/ws", c.Realtime.Connect)

	return r
}
