package availability

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/civil"
	domain "github.com/ZenKhalil/ExamProject-Barbershop-app/internal/domain/booking"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/httperr"
)

// RemoveUnavailable deletes a single unavailable date or a range of
// them. Removing dates that were never marked is a not-found error.
type RemoveUnavailable struct {
	repo domain.Repository
	log  zerolog.Logger
}

func NewRemoveUnavailable(repo domain.Repository, log zerolog.Logger) *RemoveUnavailable {
	return &RemoveUnavailable{repo: repo, log: log}
}

// Execute removes [startDate, endDate]; an empty endDate removes the
// single day startDate.
func (uc *RemoveUnavailable) Execute(
	ctx context.Context,
	barberID uint,
	startDate string,
	endDate string,
) (int64, error) {

	start, err := civil.ParseDate(startDate)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_date")
	}

	end := start
	if endDate != "" {
		if end, err = civil.ParseDate(endDate); err != nil {
			return 0, httperr.ErrBusiness("invalid_date")
		}
		if !start.Before(end) {
			return 0, httperr.ErrBusiness("invalid_date_range")
		}
	}

	affected, err := uc.repo.DeleteUnavailableRange(ctx, barberID, start, end)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, httperr.ErrBusiness("not_found")
	}

	uc.log.Info().
		Uint("barber_id", barberID).
		Str("start", startDate).
		Str("end", end.String()).
		Int64("removed", affected).
		Msg("unavailable dates removed")

	return affected, nil
}
