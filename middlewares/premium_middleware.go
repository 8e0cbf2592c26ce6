package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mealtrack/services"
)

// PremiumMiddleware gates premium-only routes behind a valid entitlement
// token minted by the (mock) subscription service.
func PremiumMiddleware(subs *services.SubscriptionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{"error": "premium entitlement required"})
			return
		}

		ent, err := subs.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{"error": "invalid or expired entitlement"})
			return
		}

		c.Set("plan", ent.Plan)
		c.Next()
	}
}
