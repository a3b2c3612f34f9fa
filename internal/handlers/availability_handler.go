package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/httperr"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/httpresp"
	ucAvailability "github.com/ZenKhalil/ExamProject-Barbershop-app/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	markUC    *ucAvailability.MarkUnavailable
	replaceUC *ucAvailability.ReplaceUnavailableRange
	removeUC  *ucAvailability.RemoveUnavailable
	listUC    *ucAvailability.ListUnavailableDates
}

func NewAvailabilityHandler(
	markUC *ucAvailability.MarkUnavailable,
	replaceUC *ucAvailability.ReplaceUnavailableRange,
	removeUC *ucAvailability.RemoveUnavailable,
	listUC *ucAvailability.ListUnavailableDates,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		markUC:    markUC,
		replaceUC: replaceUC,
		removeUC:  removeUC,
		listUC:    listUC,
	}
}

func barberIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("barberId"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber ID.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// REQUESTS
// ======================================================

type UnavailableRangeRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type ReplaceUnavailableRangeRequest struct {
	OldStartDate string `json:"old_start_date"`
	OldEndDate   string `json:"old_end_date"`
	NewStartDate string `json:"new_start_date"`
	NewEndDate   string `json:"new_end_date"`
}

// ======================================================
// MARK (POST)
// ======================================================

func (h *AvailabilityHandler) Mark(c *gin.Context) {
	barberID, ok := barberIDParam(c)
	if !ok {
		return
	}

	var req UnavailableRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	affected, err := h.markUC.Execute(c.Request.Context(), barberID, req.StartDate, req.EndDate)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(201, gin.H{
		"message":      "Unavailable dates added successfully",
		"affectedRows": affected,
	})
}

// ======================================================
// REPLACE (PUT)
// ======================================================

func (h *AvailabilityHandler) Replace(c *gin.Context) {
	barberID, ok := barberIDParam(c)
	if !ok {
		return
	}

	var req ReplaceUnavailableRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	err := h.replaceUC.Execute(c.Request.Context(), ucAvailability.ReplaceUnavailableRangeInput{
		BarberID:     barberID,
		OldStartDate: req.OldStartDate,
		OldEndDate:   req.OldEndDate,
		NewStartDate: req.NewStartDate,
		NewEndDate:   req.NewEndDate,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"message": "Unavailable dates updated successfully"})
}

// ======================================================
// REMOVE (DELETE)
// ======================================================

func (h *AvailabilityHandler) Remove(c *gin.Context) {
	barberID, ok := barberIDParam(c)
	if !ok {
		return
	}

	var req UnavailableRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	affected, err := h.removeUC.Execute(c.Request.Context(), barberID, req.StartDate, req.EndDate)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"message":      "Unavailable dates removed successfully",
		"affectedRows": affected,
	})
}

// ======================================================
// LIST (GET)
// ======================================================

func (h *AvailabilityHandler) List(c *gin.Context) {
	barberID, ok := barberIDParam(c)
	if !ok {
		return
	}

	dates, err := h.listUC.Execute(c.Request.Context(), barberID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, dates)
}
