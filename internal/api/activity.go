package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ketoplate/backend/internal/service"
	"github.com/ketoplate/backend/internal/types"
)

// ActivityHandler exposes daily water and exercise tracking.
type ActivityHandler struct {
	activity service.IActivityService
}

// NewActivityHandler creates a new ActivityHandler instance
func NewActivityHandler(activity service.IActivityService) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// RegisterRoutes registers the activity routes
func (h *ActivityHandler) RegisterRoutes(router *gin.RouterGroup) {
	activity := router.Group("/activity")
	{
		activity.POST("", h.LogActivity)
		activity.GET("", h.GetActivity)
		activity.GET("/range", h.ListActivity)
	}
}

// LogActivity upserts water and exercise values for one day
func (h *ActivityHandler) LogActivity(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req types.LogActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.activity.LogActivity(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": entry})
}

// GetActivity returns the entry for one day, zero-valued when nothing was logged
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	entry, err := h.activity.GetActivity(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": entry})
}

// ListActivity returns entries between ?from and ?to inclusive,
// defaulting to the last seven days
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	to := time.Now()
	from := to.AddDate(0, 0, -6)
	if parsed, ok := optionalDateQuery(c, "from"); !ok {
		return
	} else if parsed != nil {
		from = *parsed
	}
	if parsed, ok := optionalDateQuery(c, "to"); !ok {
		return
	} else if parsed != nil {
		to = *parsed
	}

	entries, err := h.activity.ListActivity(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": entries})
}
