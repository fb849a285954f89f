package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shadysnails/salon-scheduler/internal/httperr"
)

// Code → status mapping for every business error the booking core can
// return. Unknown errors fall through to 500.
var businessStatus = map[string]func(*gin.Context, string, string){
	"worker_not_found":      httperr.NotFound,
	"service_not_found":     httperr.NotFound,
	"additional_not_found":  httperr.NotFound,
	"customer_not_found":    httperr.NotFound,
	"appointment_not_found": httperr.NotFound,

	"time_conflict":     httperr.Conflict,
	"invalid_state":     httperr.Conflict,
	"already_cancelled": httperr.Conflict,

	"past_date":             httperr.BadRequest,
	"date_blocked":          httperr.BadRequest,
	"outside_working_hours": httperr.BadRequest,
	"cancel_cutoff":         httperr.BadRequest,
	"invalid_date_or_time":  httperr.BadRequest,

	"forbidden": httperr.Forbidden,
}

var businessMessage = map[string]string{
	"worker_not_found":      "Worker not found.",
	"service_not_found":     "Service not found.",
	"additional_not_found":  "Additional service not found.",
	"customer_not_found":    "Customer not found.",
	"appointment_not_found": "Appointment not found.",

	"time_conflict":     "The requested time is no longer available.",
	"invalid_state":     "The appointment cannot change to that state.",
	"already_cancelled": "The appointment is already cancelled.",

	"past_date":             "The date is in the past.",
	"date_blocked":          "The date is blocked.",
	"outside_working_hours": "The time is outside working hours.",
	"cancel_cutoff":         "Appointments can only be cancelled up to 2 hours before the start.",
	"invalid_date_or_time":  "Invalid date or time.",

	"forbidden": "Not allowed for this role.",
}

func writeBusinessError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	if write, ok := businessStatus[code]; ok {
		write(c, code, businessMessage[code])
		return
	}
	httperr.Internal(c, "internal_error", "Something went wrong.")
}
