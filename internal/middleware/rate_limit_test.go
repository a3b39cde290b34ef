package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// An unreachable Redis must never block the endpoint: the middleware
// fails open and flags the response instead.
func TestRateLimitFailsOpenWhenRedisUnavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})
	limiter := NewRecommendationRateLimiter(client)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", uuid.New())
	})
	router.Use(limiter.RateLimitMiddleware())
	router.GET("/recommendations", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/recommendations", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rate limit check failed", w.Header().Get("X-RateLimit-Error"))
}

func TestRateLimitRejectsUnauthenticatedRequests(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	limiter := NewRecommendationRateLimiter(client)

	router := gin.New()
	router.Use(limiter.RateLimitMiddleware())
	router.GET("/recommendations", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/recommendations", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
