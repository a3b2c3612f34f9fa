package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/httperr"
)

// Messages for the business error codes the usecases can surface.
var businessMessages = map[string]string{
	"invalid_email":             "Invalid customer email address.",
	"invalid_date":              "Invalid date, expected YYYY-MM-DD.",
	"invalid_time":              "Invalid time, expected HH:MM.",
	"invalid_date_range":        "Start date must not be after end date.",
	"invalid_service_selection": "Exactly one main service must be selected.",
	"slot_taken":                "Time slot is already booked.",
	"barber_unavailable":        "The barber is unavailable on that date.",
	"barber_not_found":          "Barber not found.",
	"service_not_found":         "One or more services do not exist.",
	"booking_not_found":         "No booking found with the given ID.",
	"not_found":                 "No unavailable dates found to remove.",
}

var notFoundCodes = map[string]bool{
	"barber_not_found":  true,
	"service_not_found": true,
	"booking_not_found": true,
	"not_found":         true,
}

// writeError maps usecase errors onto the HTTP taxonomy: validation and
// business-rule violations are 400, missing entities 404, anything else
// is a storage failure.
func writeError(c *gin.Context, err error) {
	if ve, ok := httperr.AsValidation(err); ok {
		c.JSON(400, gin.H{
			"error_code": "validation_error",
			"message":    ve.Error(),
			"fields":     ve.Fields,
		})
		return
	}

	if code := httperr.BusinessCode(err); code != "" {
		msg := businessMessages[code]
		if msg == "" {
			msg = code
		}
		if notFoundCodes[code] {
			httperr.NotFound(c, code, msg)
			return
		}
		httperr.BadRequest(c, code, msg)
		return
	}

	httperr.Internal(c, "storage_unavailable", "The request could not be completed, please retry.")
}
