package booking

import (
	"context"

	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/civil"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/models"
)

type Repository interface {
	// -------- Barber --------
	GetBarberByID(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	ListBarbers(
		ctx context.Context,
	) ([]models.Barber, error)

	// -------- Service catalog --------
	GetServicesByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	// -------- Booking (create / delete) --------

	// CreateBooking runs the whole scheduling write as one transaction:
	// the unavailable-date check, the overlap check and the inserts for
	// the booking row plus its add-on lines either all happen or none
	// do. Writers for the same barber and day are serialized so two
	// concurrent requests for the same slot cannot both pass the
	// overlap check.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
		addOnServiceIDs []uint,
	) error

	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	// DeleteBooking removes the service lines and the booking row in the
	// same transaction.
	DeleteBooking(
		ctx context.Context,
		id uint,
	) error

	// -------- Booking (reads) --------
	ListBookingsForPeriod(
		ctx context.Context,
		barberID uint,
		start civil.Date,
		end civil.Date,
	) ([]models.Booking, error)

	// -------- Unavailable dates --------

	// InsertUnavailableDates inserts one row per date, silently skipping
	// (barber, date) pairs that already exist. Returns the number of
	// rows actually inserted.
	InsertUnavailableDates(
		ctx context.Context,
		barberID uint,
		dates []civil.Date,
	) (int64, error)

	// DeleteUnavailableRange removes every unavailable date in
	// [start, end] and returns the number of rows removed.
	DeleteUnavailableRange(
		ctx context.Context,
		barberID uint,
		start civil.Date,
		end civil.Date,
	) (int64, error)

	// ReplaceUnavailableRange deletes the old range and inserts the new
	// dates in one transaction; a failed insert rolls the delete back.
	ReplaceUnavailableRange(
		ctx context.Context,
		barberID uint,
		oldStart civil.Date,
		oldEnd civil.Date,
		newDates []civil.Date,
	) error

	ListUnavailableDates(
		ctx context.Context,
		barberID uint,
	) ([]civil.Date, error)
}
