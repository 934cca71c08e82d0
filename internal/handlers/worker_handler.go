package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/VelvetRowStudio/salon-manager/internal/dto"
	"github.com/VelvetRowStudio/salon-manager/internal/httperr"
	"github.com/VelvetRowStudio/salon-manager/internal/httpresp"
	"github.com/VelvetRowStudio/salon-manager/internal/middleware"
	ucAppointment "github.com/VelvetRowStudio/salon-manager/internal/usecase/appointment"
)

// ======================================================
// HANDLER (worker tooling)
// ======================================================

type WorkerHandler struct {
	claimUC     *ucAppointment.ClaimAppointment
	statusUC    *ucAppointment.UpdateStatus
	cancelUC    *ucAppointment.CancelAppointment
	unclaimedUC *ucAppointment.ListUnclaimed
	scheduleUC  *ucAppointment.ListForWorkerByDate
}

func NewWorkerHandler(
	claimUC *ucAppointment.ClaimAppointment,
	statusUC *ucAppointment.UpdateStatus,
	cancelUC *ucAppointment.CancelAppointment,
	unclaimedUC *ucAppointment.ListUnclaimed,
	scheduleUC *ucAppointment.ListForWorkerByDate,
) *WorkerHandler {
	return &WorkerHandler{
		claimUC:     claimUC,
		statusUC:    statusUC,
		cancelUC:    cancelUC,
		unclaimedUC: unclaimedUC,
		scheduleUC:  scheduleUC,
	}
}

// ======================================================
// BOARD (unclaimed appointments)
// ======================================================

func (h *WorkerHandler) ListUnclaimed(c *gin.Context) {
	aps, err := h.unclaimedUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_unclaimed")
		return
	}

	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			TimeSlot:    ap.TimeSlot,
			Status:      ap.Status,
			ClientName:  ap.Client.Name,
			ServiceName: ap.ServiceName,
			TotalAmount: ap.TotalAmount,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// CLAIM
// ======================================================

func (h *WorkerHandler) Claim(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := pathID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.claimUC.Execute(c.Request.Context(), id, workerID)
	if err != nil {
		httperr.Respond(c, err, "failed_to_claim_appointment")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// COMPLETE / CANCEL
// ======================================================

func (h *WorkerHandler) Complete(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := pathID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.statusUC.Execute(c.Request.Context(), id, workerID, "completed")
	if err != nil {
		httperr.Respond(c, err, "failed_to_complete_appointment")
		return
	}

	httpresp.OK(c, ap)
}

func (h *WorkerHandler) Cancel(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	id, err := pathID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), id, workerID, role)
	if err != nil {
		httperr.Respond(c, err, "failed_to_cancel_appointment")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DAY SCHEDULE
// ======================================================

func (h *WorkerHandler) ScheduleByDate(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextUserID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	aps, err := h.scheduleUC.Execute(c.Request.Context(), workerID, dateStr)
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_schedule")
		return
	}

	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			TimeSlot:    ap.TimeSlot,
			Status:      ap.Status,
			ClientName:  ap.Client.Name,
			ServiceName: ap.ServiceName,
			TotalAmount: ap.TotalAmount,
		})
	}

	httpresp.List(c, out)
}
