package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"mealtrack/services"
)

type SubscriptionController struct {
	Svc *services.SubscriptionService
}

func NewSubscriptionController(svc *services.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{Svc: svc}
}

// Activate mints a mock entitlement token. There is no payment step.
func (h *SubscriptionController) Activate(c *gin.Context) {
	var body struct {
		Plan string `json:"plan" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, ent, err := h.Svc.Activate(body.Plan, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "entitlement": ent})
}

// Status reports whether the presented entitlement is still active.
func (h *SubscriptionController) Status(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.JSON(http.StatusOK, gin.H{"active": false})
		return
	}

	ent, err := h.Svc.Verify(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"active": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"active": true, "entitlement": ent})
}
