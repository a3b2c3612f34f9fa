package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/httperr"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/httpresp"
	ucBooking "github.com/ZenKhalil/ExamProject-Barbershop-app/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC        *ucBooking.CreateBooking
	deleteUC        *ucBooking.DeleteBooking
	listTimeslotsUC *ucBooking.ListUnavailableTimeslots
	listUC          *ucBooking.ListBookings
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	deleteUC *ucBooking.DeleteBooking,
	listTimeslotsUC *ucBooking.ListUnavailableTimeslots,
	listUC *ucBooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		createUC:        createUC,
		deleteUC:        deleteUC,
		listTimeslotsUC: listTimeslotsUC,
		listUC:          listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	BookingDate   string `json:"booking_date"`
	BookingTime   string `json:"booking_time"`
	BarberID      uint   `json:"barber_id"`
	Services      []uint `json:"services"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		BarberID:      req.BarberID,
		Date:          req.BookingDate,
		Time:          req.BookingTime,
		ServiceIDs:    req.Services,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	resp := gin.H{
		"message":   "Booking created successfully",
		"bookingId": result.Booking.ID,
		"reference": result.Booking.Reference,
		"end_time":  result.Booking.EndTime,
	}
	if result.Warning != "" {
		resp["warning"] = result.Warning
	}
	c.JSON(201, resp)
}

// ======================================================
// UNAVAILABLE TIMESLOTS
// ======================================================

func (h *BookingHandler) UnavailableTimeslots(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Query("barberId"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "missing_barber_id", "Missing barberId parameter.")
		return
	}

	slots, err := h.listTimeslotsUC.Execute(c.Request.Context(), ucBooking.ListUnavailableTimeslotsInput{
		BarberID: uint(barberID),
		Date:     c.Query("date"),
		Start:    c.Query("start"),
		End:      c.Query("end"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, slots)
}

// ======================================================
// LIST (staff)
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, bookings)
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking ID.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), uint(id)); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"message": "Booking deleted successfully"})
}
