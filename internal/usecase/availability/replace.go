package availability

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/civil"
	domain "github.com/ZenKhalil/ExamProject-Barbershop-app/internal/domain/booking"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/httperr"
)

type ReplaceUnavailableRangeInput struct {
	BarberID uint

	OldStartDate string
	OldEndDate   string
	NewStartDate string
	NewEndDate   string
}

// ReplaceUnavailableRange swaps one unavailable range for another as a
// single atomic unit: the old rows are deleted and the new ones
// inserted in the same transaction, so a failed insert leaves the old
// range in place. Applying the same replacement twice is idempotent.
type ReplaceUnavailableRange struct {
	repo domain.Repository
	log  zerolog.Logger
}

func NewReplaceUnavailableRange(repo domain.Repository, log zerolog.Logger) *ReplaceUnavailableRange {
	return &ReplaceUnavailableRange{repo: repo, log: log}
}

func (uc *ReplaceUnavailableRange) Execute(
	ctx context.Context,
	in ReplaceUnavailableRangeInput,
) error {

	oldStart, err := civil.ParseDate(in.OldStartDate)
	if err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	oldEnd, err := civil.ParseDate(in.OldEndDate)
	if err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	if oldEnd.Before(oldStart) {
		return httperr.ErrBusiness("invalid_date_range")
	}

	newStart, err := civil.ParseDate(in.NewStartDate)
	if err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	newEnd, err := civil.ParseDate(in.NewEndDate)
	if err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	// The replacement range must span at least two days; this mirrors
	// the public API contract of the PUT endpoint.
	if !newStart.Before(newEnd) {
		return httperr.ErrBusiness("invalid_date_range")
	}

	newDates, err := civil.DateRange(newStart, newEnd)
	if err != nil {
		return httperr.ErrBusiness("invalid_date_range")
	}

	if _, err := uc.repo.GetBarberByID(ctx, in.BarberID); err != nil {
		return err
	}

	if err := uc.repo.ReplaceUnavailableRange(ctx, in.BarberID, oldStart, oldEnd, newDates); err != nil {
		return err
	}

	uc.log.Info().
		Uint("barber_id", in.BarberID).
		Str("old_start", in.OldStartDate).
		Str("old_end", in.OldEndDate).
		Str("new_start", in.NewStartDate).
		Str("new_end", in.NewEndDate).
		Msg("unavailable range replaced")

	return nil
}
