package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VelvetRowStudio/salon-manager/internal/httperr"
	"github.com/VelvetRowStudio/salon-manager/internal/httpresp"
	"github.com/VelvetRowStudio/salon-manager/internal/models"
	ucAppointment "github.com/VelvetRowStudio/salon-manager/internal/usecase/appointment"
)

// ======================================================
// HANDLER (unauthenticated storefront reads)
// ======================================================

type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *ucAppointment.GetAvailability
}

func NewPublicHandler(db *gorm.DB, availabilityUC *ucAppointment.GetAvailability) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
	}
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = ?", true).
		Order("category ASC, name ASC").
		Find(&services).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), dateStr)
	if err != nil {
		httperr.Respond(c, err, "failed_to_get_availability")
		return
	}

	httpresp.List(c, slots)
}
