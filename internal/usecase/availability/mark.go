package availability

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/civil"
	domain "github.com/ZenKhalil/ExamProject-Barbershop-app/internal/domain/booking"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/httperr"
)

// MarkUnavailable inserts one unavailable-date row per day in the
// range. Re-marking already unavailable days is a no-op, not an error.
type MarkUnavailable struct {
	repo domain.Repository
	log  zerolog.Logger
}

func NewMarkUnavailable(repo domain.Repository, log zerolog.Logger) *MarkUnavailable {
	return &MarkUnavailable{repo: repo, log: log}
}

func (uc *MarkUnavailable) Execute(
	ctx context.Context,
	barberID uint,
	startDate string,
	endDate string,
) (int64, error) {

	dates, err := parseRange(startDate, endDate)
	if err != nil {
		return 0, err
	}

	if _, err := uc.repo.GetBarberByID(ctx, barberID); err != nil {
		return 0, err
	}

	affected, err := uc.repo.InsertUnavailableDates(ctx, barberID, dates)
	if err != nil {
		return 0, err
	}

	uc.log.Info().
		Uint("barber_id", barberID).
		Str("start", startDate).
		Str("end", endDate).
		Int64("inserted", affected).
		Msg("barber marked unavailable")

	return affected, nil
}

// parseRange validates both endpoints and enumerates the inclusive
// range. A single-day range (start == end) is fine.
func parseRange(startDate, endDate string) ([]civil.Date, error) {
	start, err := civil.ParseDate(startDate)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	end, err := civil.ParseDate(endDate)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	dates, err := civil.DateRange(start, end)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_range")
	}
	return dates, nil
}
