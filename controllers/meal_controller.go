package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mealtrack/services"
)

type MealController struct {
	Svc *services.MealService
}

func NewMealController(svc *services.MealService) *MealController {
	return &MealController{Svc: svc}
}

func (h *MealController) LogMeal(c *gin.Context) {
	var body services.MealInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, streak, err := h.Svc.LogMeal(c.Request.Context(), body)
	if err != nil {
		// The meal may have been persisted even when the streak update failed.
		if meal != nil {
			c.JSON(http.StatusCreated, gin.H{"meal": meal, "streak_error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"meal": meal, "streak": streak})
}

func (h *MealController) ListMeals(c *gin.Context) {
	if fromStr, toStr := c.Query("from"), c.Query("to"); fromStr != "" && toStr != "" {
		loc := time.Now().Location()
		from, err := time.ParseInLocation("2006-01-02", fromStr, loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return
		}
		to, err := time.ParseInLocation("2006-01-02", toStr, loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
			return
		}
		if to.Before(from) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "`to` must be on/after `from`"})
			return
		}
		meals, err := h.Svc.ListMealsByDateRange(c.Request.Context(), from, to.AddDate(0, 0, 1).Add(-time.Nanosecond))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, meals)
		return
	}

	meals, err := h.Svc.ListMeals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (h *MealController) ListRecentMeals(c *gin.Context) {
	limit := 3
	if v := c.Query("limit"); v != "" {
		if n, err := parsePositiveInt(v); err == nil {
			limit = n
		}
	}
	meals, err := h.Svc.ListRecentMeals(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (h *MealController) DeleteMeal(c *gin.Context) {
	err := h.Svc.DeleteMeal(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}
