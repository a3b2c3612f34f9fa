package booking

import (
	"context"

	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/civil"
	domain "github.com/ZenKhalil/ExamProject-Barbershop-app/internal/domain/booking"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/httperr"
)

type ListUnavailableTimeslotsInput struct {
	BarberID uint

	// Either Date alone (a single day) or Start and End (inclusive
	// range) must be given.
	Date  string
	Start string
	End   string
}

// ListUnavailableTimeslots renders every booked [start, end) interval
// of a barber for client-side calendar rendering. Pure read.
type ListUnavailableTimeslots struct {
	repo domain.Repository
}

func NewListUnavailableTimeslots(repo domain.Repository) *ListUnavailableTimeslots {
	return &ListUnavailableTimeslots{repo: repo}
}

func (uc *ListUnavailableTimeslots) Execute(
	ctx context.Context,
	in ListUnavailableTimeslotsInput,
) ([]domain.TimeSlot, error) {

	if in.BarberID == 0 {
		return nil, httperr.ErrValidation("barberId")
	}

	var start, end civil.Date
	switch {
	case in.Date != "":
		d, err := civil.ParseDate(in.Date)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		start, end = d, d
	case in.Start != "" && in.End != "":
		var err error
		if start, err = civil.ParseDate(in.Start); err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		if end, err = civil.ParseDate(in.End); err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		if end.Before(start) {
			return nil, httperr.ErrBusiness("invalid_date_range")
		}
	default:
		return nil, httperr.ErrValidation("date", "start", "end")
	}

	bookings, err := uc.repo.ListBookingsForPeriod(ctx, in.BarberID, start, end)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.TimeSlot, 0, len(bookings))
	for _, b := range bookings {
		slots = append(slots, domain.NewTimeSlot(b.BookingDate, b.BookingTime, b.EndTime))
	}
	return slots, nil
}
