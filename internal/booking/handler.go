package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Wizard / walk-in: create booking
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	appointment, warnings, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking":  appointment,
		"warnings": warnings,
		"message":  "Booking created. Settle the down payment to confirm your slot.",
	})
}

// --------------------------------------------------
// Customer: look up a booking by reference
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	appointment, err := h.service.Get(c.Request.Context(), c.Param("reference"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": appointment})
}

// --------------------------------------------------
// Admin: list all bookings
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	appointments, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": appointments})
}
