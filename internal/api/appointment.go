package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ketoplate/backend/internal/service"
	"github.com/ketoplate/backend/internal/types"
	"gorm.io/gorm"
)

// AppointmentHandler exposes nutritionist appointment scheduling.
type AppointmentHandler struct {
	appointments service.IAppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler instance
func NewAppointmentHandler(appointments service.IAppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

// RegisterRoutes registers the appointment routes
func (h *AppointmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	appointments := router.Group("/appointments")
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("", h.ListAppointments)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.POST("/:id/cancel", h.CancelAppointment)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}
}

// CreateAppointment schedules a new appointment
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req types.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, err := h.appointments.CreateAppointment(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create appointment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"appointment": appointment})
}

// ListAppointments returns the user's appointments; ?upcoming=true limits to future ones
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	upcomingOnly := c.Query("upcoming") == "true"

	appointments, err := h.appointments.ListAppointments(c.Request.Context(), userID, upcomingOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list appointments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// GetAppointment returns a single appointment
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	appointment, err := h.appointments.GetAppointment(c.Request.Context(), userID, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": appointment})
}

// UpdateAppointment changes an appointment's details or status
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	var req types.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, err := h.appointments.UpdateAppointment(c.Request.Context(), userID, appointmentID, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		if errors.Is(err, service.ErrInvalidAppointmentStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": appointment})
}

// CancelAppointment marks an appointment as cancelled
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	appointment, err := h.appointments.CancelAppointment(c.Request.Context(), userID, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": appointment})
}

// DeleteAppointment removes an appointment
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	if err := h.appointments.DeleteAppointment(c.Request.Context(), userID, appointmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "appointment deleted"})
}
