package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VelvetRowStudio/salon-manager/internal/models"
	"github.com/VelvetRowStudio/salon-manager/internal/timezone"
)

type SalonHandler struct {
	db *gorm.DB
}

func NewSalonHandler(db *gorm.DB) *SalonHandler {
	return &SalonHandler{db: db}
}

type UpdateSalonRequest struct {
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	Timezone    *string `json:"timezone,omitempty"`
	OpenTime    *string `json:"open_time,omitempty"`
	CloseTime   *string `json:"close_time,omitempty"`
	SlotMinutes *int    `json:"slot_minutes,omitempty"`
}

func (h *SalonHandler) Get(c *gin.Context) {
	var salon models.Salon
	if err := h.db.Order("id ASC").First(&salon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "salon_not_found"})
		return
	}

	c.JSON(http.StatusOK, salon)
}

func (h *SalonHandler) Update(c *gin.Context) {
	var salon models.Salon
	if err := h.db.Order("id ASC").First(&salon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "salon_not_found"})
		return
	}

	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	if req.Timezone != nil && !timezone.IsValid(*req.Timezone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_timezone"})
		return
	}

	if req.Name != nil {
		salon.Name = *req.Name
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.Timezone != nil {
		salon.Timezone = *req.Timezone
	}
	if req.OpenTime != nil {
		salon.OpenTime = *req.OpenTime
	}
	if req.CloseTime != nil {
		salon.CloseTime = *req.CloseTime
	}
	if req.SlotMinutes != nil && *req.SlotMinutes > 0 {
		salon.SlotMinutes = *req.SlotMinutes
	}

	if err := h.db.Save(&salon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_salon"})
		return
	}

	c.JSON(http.StatusOK, salon)
}
