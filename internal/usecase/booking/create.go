package booking

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/civil"
	domain "github.com/ZenKhalil/ExamProject-Barbershop-app/internal/domain/booking"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/httperr"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/metrics"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/models"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/notify"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/validators"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateBookingInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	BarberID uint

	Date string
	Time string

	ServiceIDs []uint
}

type CreateBookingResult struct {
	Booking *models.Booking

	// Warning is set when the booking was persisted but its
	// confirmation could not be handed to the notification sink.
	Warning string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo domain.Repository
	sink notify.Sink
	log  zerolog.Logger
}

func NewCreateBooking(
	repo domain.Repository,
	sink notify.Sink,
	log zerolog.Logger,
) *CreateBooking {
	return &CreateBooking{
		repo: repo,
		sink: sink,
		log:  log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*CreateBookingResult, error) {

	// --------------------------------------------------
	// 1. Input validation, before anything touches storage
	// --------------------------------------------------
	var missing []string
	if in.CustomerName == "" {
		missing = append(missing, "customer_name")
	}
	if in.CustomerEmail == "" {
		missing = append(missing, "customer_email")
	}
	if in.Date == "" {
		missing = append(missing, "booking_date")
	}
	if in.Time == "" {
		missing = append(missing, "booking_time")
	}
	if in.BarberID == 0 {
		missing = append(missing, "barber_id")
	}
	if len(in.ServiceIDs) == 0 {
		missing = append(missing, "services")
	}
	if len(missing) > 0 {
		return nil, httperr.ErrValidation(missing...)
	}

	if !validators.IsEmailValid(in.CustomerEmail) {
		return nil, httperr.ErrBusiness("invalid_email")
	}

	date, err := civil.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	start, err := civil.ParseTime(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// --------------------------------------------------
	// 2. Barber
	// --------------------------------------------------
	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Services and duration
	// --------------------------------------------------
	services, err := uc.repo.GetServicesByIDs(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}
	selection, err := domain.NewSelection(in.ServiceIDs, services)
	if err != nil {
		return nil, err
	}

	end, wrapped := domain.ComputeEndTime(start, selection.TotalMinutes())
	if wrapped {
		// Appointments are expected to fit within one calendar day; the
		// booking still goes through end-of-day but is worth noticing.
		uc.log.Warn().
			Uint("barber_id", in.BarberID).
			Str("date", date.String()).
			Str("start", start.String()).
			Str("end", end.String()).
			Msg("booking end time wraps past midnight")
	}

	// --------------------------------------------------
	// 4. Transactional slot claim
	// --------------------------------------------------
	b := &models.Booking{
		Reference:     uuid.NewString(),
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		BarberID:      barber.ID,
		BookingDate:   date,
		BookingTime:   start,
		EndTime:       end,
		ServiceNames:  selection.Names(),
		MainServiceID: selection.Main.ID,
	}

	if err := uc.repo.CreateBooking(ctx, b, selection.AddOnIDs()); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			metrics.IncBookingConflicts()
		}
		return nil, err
	}

	metrics.IncBookingsCreated()

	// --------------------------------------------------
	// 5. Confirmation event, decoupled from the transaction
	// --------------------------------------------------
	result := &CreateBookingResult{Booking: b}

	ev := notify.BookingConfirmed{
		Reference:     b.Reference,
		BarberName:    barber.Name,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Date:          b.BookingDate,
		Start:         b.BookingTime,
		End:           b.EndTime,
		ServiceNames:  b.ServiceNames,
	}
	if err := uc.sink.Send(ev); err != nil {
		uc.log.Warn().
			Err(err).
			Str("reference", b.Reference).
			Msg("booking confirmed but notification failed")
		result.Warning = "booking confirmed, but the confirmation message could not be sent"
	}

	return result, nil
}
