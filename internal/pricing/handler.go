package pricing

import (
	"net/http"

	"joacms/internal/recommend"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// --------------------------------------------------
// Quote a finalized menu (wizard review step)
// --------------------------------------------------
func (h *Handler) Quote(c *gin.Context) {
	var req struct {
		MenuSelection *recommend.Selection `json:"menu_selection"`
		GuestCount    int                  `json:"guest_count"`
		EventType     string               `json:"event_type"`
		AddOnFee      float64              `json:"add_on_fee"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.MenuSelection == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_selection is required"})
		return
	}
	if err := req.MenuSelection.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu selection: " + err.Error()})
		return
	}
	if !IsValidGuestCount(req.GuestCount) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest_count must be one of 50, 80, 100, 150, 200, 300"})
		return
	}
	if req.AddOnFee < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "add_on_fee cannot be negative"})
		return
	}

	breakdown := Compute(
		req.MenuSelection.Items(),
		req.GuestCount,
		req.EventType,
		req.AddOnFee,
	)

	c.JSON(http.StatusOK, gin.H{"pricing": breakdown})
}
