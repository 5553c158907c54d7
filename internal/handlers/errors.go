package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/hammam97-h/barber-booking/internal/httperr"
)

// writeError maps a use case error onto the HTTP surface. Expected business
// failures get their taxonomy status; everything else is a storage or
// programming fault and surfaces as 500 — never disguised as an empty result.
func writeError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		log.Println("internal error:", err)
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	switch code {
	case "service_not_found":
		httperr.NotFound(c, code, "Service not found.")
	case "appointment_not_found":
		httperr.NotFound(c, code, "Appointment not found.")
	case "time_conflict":
		httperr.Conflict(c, code, "This time slot is no longer available.")
	case "forbidden":
		httperr.Forbidden(c, code, "Not authorized.")
	case "invalid_transition", "invalid_status":
		httperr.Unprocessable(c, code, "Invalid status change.")
	case "invalid_date", "invalid_time_format":
		httperr.BadRequest(c, code, "Invalid date or time.")
	default:
		httperr.BadRequest(c, code, code)
	}
}
