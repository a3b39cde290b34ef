package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ketoplate/backend/internal/service"
	"github.com/ketoplate/backend/internal/types"
	"gorm.io/gorm"
)

// ProfileHandler exposes profile and dietary preference management.
type ProfileHandler struct {
	profile     service.IProfileService
	preferences service.IPreferenceService
}

// NewProfileHandler creates a new ProfileHandler instance
func NewProfileHandler(profile service.IProfileService, preferences service.IPreferenceService) *ProfileHandler {
	return &ProfileHandler{
		profile:     profile,
		preferences: preferences,
	}
}

// RegisterRoutes registers the profile routes
func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.POST("/avatar", h.UploadAvatar)
		profile.GET("/preferences", h.GetPreferences)
		profile.PUT("/preferences", h.UpdatePreferences)
	}
}

// GetProfile returns the authenticated user's profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	profile, err := h.profile.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpdateProfile updates the authenticated user's profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profile.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UploadAvatar stores a new profile picture
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read avatar file"})
		return
	}
	defer file.Close()

	url, err := h.profile.UploadAvatar(
		c.Request.Context(),
		userID,
		file,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		if errors.Is(err, service.ErrAvatarStorageUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload avatar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}

// GetPreferences returns the user's dietary targets, defaults included
func (h *ProfileHandler) GetPreferences(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	prefs := h.preferences.ResolvePreferences(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

// UpdatePreferences replaces the user's dietary targets
func (h *ProfileHandler) UpdatePreferences(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req types.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prefs, err := h.preferences.UpdatePreferences(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update preferences"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}
