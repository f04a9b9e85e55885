package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// DownloadRateLimit throttles dataset exports per client IP. Regeneration is
// cheap, but the SAV writer assembles the whole file in memory per request.
func DownloadRateLimit() gin.HandlerFunc {
	return limit.NewRateLimiter(func(c *gin.Context) string {
		return c.ClientIP()
	}, func(c *gin.Context) (*rate.Limiter, time.Duration) {
		// 2 downloads/sec with a burst of 5 per IP, limiter state kept 10 min
		return rate.NewLimiter(rate.Every(500*time.Millisecond), 5), 10 * time.Minute
	}, func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many download requests"})
	})
}
