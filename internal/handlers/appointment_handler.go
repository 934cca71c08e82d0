package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VelvetRowStudio/salon-manager/internal/httperr"
	"github.com/VelvetRowStudio/salon-manager/internal/httpresp"
	"github.com/VelvetRowStudio/salon-manager/internal/middleware"
	ucAppointment "github.com/VelvetRowStudio/salon-manager/internal/usecase/appointment"
)

// ======================================================
// HANDLER (client-facing lifecycle)
// ======================================================

type AppointmentHandler struct {
	bookUC   *ucAppointment.BookAppointment
	cancelUC *ucAppointment.CancelAppointment
	deleteUC *ucAppointment.DeleteAppointment
	undoUC   *ucAppointment.UndoDelete
	listUC   *ucAppointment.ListByClient
}

func NewAppointmentHandler(
	bookUC *ucAppointment.BookAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	undoUC *ucAppointment.UndoDelete,
	listUC *ucAppointment.ListByClient,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:   bookUC,
		cancelUC: cancelUC,
		deleteUC: deleteUC,
		undoUC:   undoUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	TimeSlot  string `json:"time_slot" binding:"required"`
	Notes     string `json:"notes"`
}

type UndoDeleteRequest struct {
	Token string `json:"token" binding:"required"`
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		ClientID:  clientID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_book_appointment")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST (own appointments)
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	aps, err := h.listUC.Execute(c.Request.Context(), clientID)
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_appointments")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	id, err := pathID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), id, clientID, role)
	if err != nil {
		httperr.Respond(c, err, "failed_to_cancel_appointment")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE + UNDO
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := pathID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	token, err := h.deleteUC.Execute(c.Request.Context(), id, clientID)
	if err != nil {
		httperr.Respond(c, err, "failed_to_delete_appointment")
		return
	}

	httpresp.OK(c, gin.H{"undo_token": token})
}

func (h *AppointmentHandler) Undo(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req UndoDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing undo token.")
		return
	}

	ap, err := h.undoUC.Execute(c.Request.Context(), req.Token, clientID)
	if err != nil {
		httperr.Respond(c, err, "failed_to_undo_delete")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// HELPERS
// ======================================================

func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
