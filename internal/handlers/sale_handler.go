package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/VelvetRowStudio/salon-manager/internal/audit"
	domain "github.com/VelvetRowStudio/salon-manager/internal/domain/appointment"
	"github.com/VelvetRowStudio/salon-manager/internal/httperr"
	"github.com/VelvetRowStudio/salon-manager/internal/httpresp"
	"github.com/VelvetRowStudio/salon-manager/internal/middleware"
	"github.com/VelvetRowStudio/salon-manager/internal/models"
	"github.com/VelvetRowStudio/salon-manager/internal/timezone"
)

// ======================================================
// HANDLER (front-desk sales + profit report)
// ======================================================

type SaleHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSaleHandler(db *gorm.DB, audit *audit.Dispatcher) *SaleHandler {
	return &SaleHandler{db: db, audit: audit}
}

// ======================================================
// REQUESTS
// ======================================================

type RecordSaleRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// ======================================================
// RECORD
// ======================================================

// Record books a retail sale: the stock decrement and the sale row go
// through one transaction so stock can never go negative.
func (h *SaleHandler) Record(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextUserID).(uint)

	var req RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid sale payload.")
		return
	}

	var sale models.Sale

	err := h.db.Transaction(func(tx *gorm.DB) error {

		var product models.Product
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, req.ProductID).Error; err != nil {
			return httperr.ErrBusiness("product_not_found")
		}

		if !product.Active {
			return httperr.ErrBusiness("product_not_found")
		}

		if product.Stock < req.Quantity {
			return httperr.ErrBusiness("insufficient_stock")
		}

		product.Stock -= req.Quantity
		if err := tx.Save(&product).Error; err != nil {
			return err
		}

		sale = models.Sale{
			WorkerID:  workerID,
			ProductID: product.ID,
			Quantity:  req.Quantity,
			UnitPrice: product.Price,
			Total:     product.Price * float64(req.Quantity),
		}

		return tx.Create(&sale).Error
	})

	if err != nil {
		httperr.Respond(c, err, "failed_to_record_sale")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &workerID,
		Action:   "sale_recorded",
		Entity:   "sale",
		EntityID: &sale.ID,
	})

	httpresp.Created(c, sale)
}

// ======================================================
// DAILY REPORT (admin)
// ======================================================

// DailyReport sums retail sales and completed-appointment revenue for
// one calendar date.
func (h *SaleHandler) DailyReport(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	var salon models.Salon
	if err := h.db.Order("id ASC").First(&salon).Error; err != nil {
		httperr.Internal(c, "salon_not_found", "Salon settings missing.")
		return
	}

	date, err := timezone.DateIn(salon.Timezone, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}
	dayEnd := date.Add(24 * time.Hour)

	var salesTotal float64
	var salesCount int64
	h.db.Model(&models.Sale{}).
		Where("created_at >= ? AND created_at < ?", date, dayEnd).
		Count(&salesCount)
	h.db.Model(&models.Sale{}).
		Where("created_at >= ? AND created_at < ?", date, dayEnd).
		Select("COALESCE(SUM(total), 0)").
		Scan(&salesTotal)

	var serviceTotal float64
	var serviceCount int64
	h.db.Model(&models.Appointment{}).
		Where("date = ? AND status = ?", date, string(domain.StatusCompleted)).
		Count(&serviceCount)
	h.db.Model(&models.Appointment{}).
		Where("date = ? AND status = ?", date, string(domain.StatusCompleted)).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&serviceTotal)

	httpresp.OK(c, gin.H{
		"date":                   dateStr,
		"sales_count":            salesCount,
		"sales_total":            salesTotal,
		"completed_appointments": serviceCount,
		"service_total":          serviceTotal,
		"grand_total":            salesTotal + serviceTotal,
	})
}
