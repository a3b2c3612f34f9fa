package availability

import (
	"context"

	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/civil"
	domain "github.com/ZenKhalil/ExamProject-Barbershop-app/internal/domain/booking"
)

type ListUnavailableDates struct {
	repo domain.Repository
}

func NewListUnavailableDates(repo domain.Repository) *ListUnavailableDates {
	return &ListUnavailableDates{repo: repo}
}

func (uc *ListUnavailableDates) Execute(
	ctx context.Context,
	barberID uint,
) ([]civil.Date, error) {

	if _, err := uc.repo.GetBarberByID(ctx, barberID); err != nil {
		return nil, err
	}
	return uc.repo.ListUnavailableDates(ctx, barberID)
}
