package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"mealtrack/services"
)

type StatsController struct {
	Stats   *services.StatsService
	Streaks *services.StreakService
}

func NewStatsController(stats *services.StatsService, streaks *services.StreakService) *StatsController {
	return &StatsController{Stats: stats, Streaks: streaks}
}

// GetStats runs one stats refresh. On a storage failure the last good
// result is returned with a non-blocking stale flag instead of blanking
// the dashboard.
func (h *StatsController) GetStats(c *gin.Context) {
	stats, err := h.Stats.FetchStats(c.Request.Context(), time.Now())
	if err != nil {
		if stats != nil {
			c.JSON(http.StatusOK, gin.H{"stats": stats, "stale": true, "refresh_error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats, "stale": false})
}

// GetCaloriesOnDate returns the day total for an arbitrary date.
func (h *StatsController) GetCaloriesOnDate(c *gin.Context) {
	now := time.Now()
	dateStr := c.DefaultQuery("date", now.Format("2006-01-02"))
	date, err := time.ParseInLocation("2006-01-02", dateStr, now.Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	total, err := h.Stats.CaloriesOnDate(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": dateStr, "calories": total})
}

// GetStreak returns the current streak record.
func (h *StatsController) GetStreak(c *gin.Context) {
	rec, err := h.Streaks.Current()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// ReconcileStreak is the app-foreground check: it decays a broken streak
// but never advances one. Idempotent.
func (h *StatsController) ReconcileStreak(c *gin.Context) {
	rec, err := h.Streaks.Reconcile(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func parsePositiveInt(v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
