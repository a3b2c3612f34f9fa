package booking

import (
	"context"

	"github.com/rs/zerolog"

	domain "github.com/ZenKhalil/ExamProject-Barbershop-app/internal/domain/booking"
)

type DeleteBooking struct {
	repo domain.Repository
	log  zerolog.Logger
}

func NewDeleteBooking(repo domain.Repository, log zerolog.Logger) *DeleteBooking {
	return &DeleteBooking{repo: repo, log: log}
}

// Execute removes the booking and its service lines in one transaction.
func (uc *DeleteBooking) Execute(ctx context.Context, bookingID uint) error {
	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteBooking(ctx, bookingID); err != nil {
		return err
	}

	uc.log.Info().
		Uint("booking_id", bookingID).
		Str("reference", b.Reference).
		Uint("barber_id", b.BarberID).
		Str("date", b.BookingDate.String()).
		Msg("booking deleted")
	return nil
}
