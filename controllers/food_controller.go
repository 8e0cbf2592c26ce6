package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mealtrack/services"
)

type FoodController struct {
	Svc *services.FoodService
}

func NewFoodController(svc *services.FoodService) *FoodController {
	return &FoodController{Svc: svc}
}

func (h *FoodController) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	foods, err := h.Svc.Search(c.Request.Context(), query, 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// Scan resolves a barcode to a catalog entry via the mock recognizer.
func (h *FoodController) Scan(c *gin.Context) {
	var body struct {
		Barcode string `json:"barcode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.Svc.Scan(c.Request.Context(), body.Barcode)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCatalog) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no foods available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}
