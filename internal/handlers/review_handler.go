package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/VelvetRowStudio/salon-manager/internal/httperr"
	"github.com/VelvetRowStudio/salon-manager/internal/httpresp"
	"github.com/VelvetRowStudio/salon-manager/internal/middleware"
	ucReview "github.com/VelvetRowStudio/salon-manager/internal/usecase/review"
)

type ReviewHandler struct {
	submitUC *ucReview.SubmitReview
}

func NewReviewHandler(submitUC *ucReview.SubmitReview) *ReviewHandler {
	return &ReviewHandler{submitUC: submitUC}
}

type SubmitReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// Submit is a PUT: posting twice edits the existing review.
func (h *ReviewHandler) Submit(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := pathID(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid review payload.")
		return
	}

	rev, err := h.submitUC.Execute(c.Request.Context(), ucReview.SubmitReviewInput{
		AppointmentID: id,
		ClientID:      clientID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_submit_review")
		return
	}

	httpresp.OK(c, rev)
}
