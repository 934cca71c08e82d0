package httperr

import "github.com/gin-gonic/gin"

// messages shown to the caller per business code; anything missing
// falls back to the code itself.
var messages = map[string]string{
	"slot_taken":                "That time slot was just taken, please pick another one.",
	"already_claimed":           "This appointment is no longer available.",
	"invalid_state":             "The appointment cannot change to that status.",
	"not_owner":                 "You do not own this appointment. Refresh your list.",
	"appointment_not_found":     "Appointment not found.",
	"service_not_found":         "Service not found.",
	"product_not_found":         "Product not found.",
	"service_inactive":          "This service is not offered at the moment.",
	"account_inactive":          "Your account is inactive.",
	"invalid_date":              "Invalid date.",
	"invalid_time_slot":         "Invalid time slot.",
	"outside_booking_hours":     "That time is outside booking hours.",
	"slot_in_past":              "That time is in the past.",
	"appointment_not_completed": "You can only review a completed appointment.",
	"invalid_rating":            "Rating must be between 1 and 5.",
	"undo_expired":              "The undo window has passed.",
	"undo_failed":               "The deleted appointment could not be restored.",
	"insufficient_stock":        "Not enough stock for this sale.",
	"forbidden":                 "You are not allowed to do this.",
}

var statuses = map[string]int{
	"slot_taken":                409,
	"already_claimed":           409,
	"invalid_state":             409,
	"not_owner":                 403,
	"forbidden":                 403,
	"appointment_not_found":     404,
	"service_not_found":         404,
	"product_not_found":         404,
	"undo_expired":              404,
	"appointment_not_completed": 409,
	"insufficient_stock":        409,
}

// Respond maps a use-case error to an HTTP response. Business errors
// get their mapped status; everything else is a 500 with a stable code.
func Respond(c *gin.Context, err error, fallbackCode string) {
	if code, ok := BusinessCode(err); ok {
		status, ok := statuses[code]
		if !ok {
			status = 400
		}
		msg, ok := messages[code]
		if !ok {
			msg = code
		}
		Write(c, status, code, msg)
		return
	}

	Internal(c, fallbackCode, "Something went wrong, please try again.")
}
