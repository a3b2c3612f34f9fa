package booking

import (
	"strings"

	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/httperr"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/models"
)

// Selection is a resolved set of services for one booking: exactly one
// main service plus any number of add-ons.
type Selection struct {
	Main     models.Service
	AddOns   []models.Service
	Services []models.Service
}

// NewSelection matches the requested service ids against the catalog
// rows that were found for them.
func NewSelection(requested []uint, resolved []models.Service) (*Selection, error) {
	if len(requested) == 0 {
		return nil, httperr.ErrBusiness("invalid_service_selection")
	}

	byID := make(map[uint]models.Service, len(resolved))
	for _, s := range resolved {
		byID[s.ID] = s
	}

	sel := &Selection{}
	seen := make(map[uint]bool, len(requested))
	for _, id := range requested {
		if seen[id] {
			continue
		}
		seen[id] = true

		s, ok := byID[id]
		if !ok {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		sel.Services = append(sel.Services, s)
		if s.IsMain {
			if sel.Main.ID != 0 {
				return nil, httperr.ErrBusiness("invalid_service_selection")
			}
			sel.Main = s
		} else {
			sel.AddOns = append(sel.AddOns, s)
		}
	}

	if sel.Main.ID == 0 {
		return nil, httperr.ErrBusiness("invalid_service_selection")
	}
	return sel, nil
}

// TotalMinutes sums the duration of every selected service.
func (s *Selection) TotalMinutes() int {
	total := 0
	for _, svc := range s.Services {
		total += svc.DurationMin
	}
	return total
}

// Names joins the selected service names for the denormalized booking
// column, main service first.
func (s *Selection) Names() string {
	names := make([]string, 0, len(s.Services))
	names = append(names, s.Main.Name)
	for _, svc := range s.AddOns {
		names = append(names, svc.Name)
	}
	return strings.Join(names, ", ")
}

// AddOnIDs returns the ids persisted as booking service lines.
func (s *Selection) AddOnIDs() []uint {
	ids := make([]uint, 0, len(s.AddOns))
	for _, svc := range s.AddOns {
		ids = append(ids, svc.ID)
	}
	return ids
}
