package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mealtrack/services"
)

type ExportController struct {
	Meals  *services.MealService
	Export *services.ExportService
}

func NewExportController(meals *services.MealService, export *services.ExportService) *ExportController {
	return &ExportController{Meals: meals, Export: export}
}

func (h *ExportController) ExportCSV(c *gin.Context) {
	meals, err := h.Meals.ListMeals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out, err := h.Export.ExportCSV(meals)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="meals.csv"`)
	c.Data(http.StatusOK, "text/csv", out)
}

func (h *ExportController) ExportJSON(c *gin.Context) {
	meals, err := h.Meals.ListMeals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out, err := h.Export.ExportJSON(meals, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="meals.json"`)
	c.Data(http.StatusOK, "application/json", out)
}
