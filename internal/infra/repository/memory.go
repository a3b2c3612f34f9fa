package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/civil"
	domain "github.com/ZenKhalil/ExamProject-Barbershop-app/internal/domain/booking"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/httperr"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/models"
)

type unavailableKey struct {
	barberID uint
	date     civil.Date
}

// MemoryRepository is a mutex-guarded in-memory Repository. Every
// multi-step write holds the lock for its full read-then-write span,
// mirroring the transactional discipline of the SQL implementation.
type MemoryRepository struct {
	mu sync.Mutex

	barbers     map[uint]models.Barber
	services    map[uint]models.Service
	bookings    map[uint]models.Booking
	lines       map[uint][]models.BookingService
	unavailable map[unavailableKey]models.UnavailableDate

	nextBookingID     uint
	nextLineID        uint
	nextUnavailableID uint
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		barbers:     make(map[uint]models.Barber),
		services:    make(map[uint]models.Service),
		bookings:    make(map[uint]models.Booking),
		lines:       make(map[uint][]models.BookingService),
		unavailable: make(map[unavailableKey]models.UnavailableDate),
	}
}

// Seed helpers for tests and local runs.

func (r *MemoryRepository) AddBarber(b models.Barber) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.barbers[b.ID] = b
}

func (r *MemoryRepository) AddService(s models.Service) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services[s.ID] = s
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *MemoryRepository) GetBarberByID(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.barbers[id]
	if !ok {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	return &b, nil
}

func (r *MemoryRepository) ListBarbers(
	ctx context.Context,
) ([]models.Barber, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	barbers := make([]models.Barber, 0, len(r.barbers))
	for _, b := range r.barbers {
		barbers = append(barbers, b)
	}
	sort.Slice(barbers, func(i, j int) bool { return barbers[i].ID < barbers[j].ID })
	return barbers, nil
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

func (r *MemoryRepository) GetServicesByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var services []models.Service
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if s, ok := r.services[id]; ok {
			services = append(services, s)
		}
	}
	return services, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *MemoryRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
	addOnServiceIDs []uint,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.unavailable[unavailableKey{b.BarberID, b.BookingDate}]; ok {
		return httperr.ErrBusiness("barber_unavailable")
	}

	for _, existing := range r.bookings {
		if existing.BarberID != b.BarberID || existing.BookingDate != b.BookingDate {
			continue
		}
		if domain.Overlaps(b.BookingTime, b.EndTime, existing.BookingTime, existing.EndTime) {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	r.nextBookingID++
	b.ID = r.nextBookingID

	for _, serviceID := range addOnServiceIDs {
		r.nextLineID++
		line := models.BookingService{
			ID:        r.nextLineID,
			BookingID: b.ID,
			ServiceID: serviceID,
		}
		r.lines[b.ID] = append(r.lines[b.ID], line)
		b.Services = append(b.Services, line)
	}

	r.bookings[b.ID] = *b
	return nil
}

func (r *MemoryRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	b.Services = append([]models.BookingService(nil), r.lines[id]...)
	return &b, nil
}

func (r *MemoryRepository) ListBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	bookings := make([]models.Booking, 0, len(r.bookings))
	for id, b := range r.bookings {
		b.Services = append([]models.BookingService(nil), r.lines[id]...)
		bookings = append(bookings, b)
	}
	sortBookings(bookings)
	return bookings, nil
}

func (r *MemoryRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return httperr.ErrBusiness("booking_not_found")
	}
	delete(r.lines, id)
	delete(r.bookings, id)
	return nil
}

func (r *MemoryRepository) ListBookingsForPeriod(
	ctx context.Context,
	barberID uint,
	start civil.Date,
	end civil.Date,
) ([]models.Booking, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var bookings []models.Booking
	for _, b := range r.bookings {
		if b.BarberID != barberID {
			continue
		}
		if b.BookingDate.Before(start) || b.BookingDate.After(end) {
			continue
		}
		bookings = append(bookings, b)
	}
	sortBookings(bookings)
	return bookings, nil
}

func sortBookings(bookings []models.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if c := bookings[i].BookingDate.Compare(bookings[j].BookingDate); c != 0 {
			return c < 0
		}
		return bookings[i].BookingTime.Minutes() < bookings[j].BookingTime.Minutes()
	})
}

// --------------------------------------------------
// Unavailable dates
// --------------------------------------------------

func (r *MemoryRepository) InsertUnavailableDates(
	ctx context.Context,
	barberID uint,
	dates []civil.Date,
) (int64, error) {

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insertUnavailableLocked(barberID, dates), nil
}

func (r *MemoryRepository) insertUnavailableLocked(
	barberID uint,
	dates []civil.Date,
) int64 {

	var inserted int64
	for _, d := range dates {
		key := unavailableKey{barberID, d}
		if _, ok := r.unavailable[key]; ok {
			continue
		}
		r.nextUnavailableID++
		r.unavailable[key] = models.UnavailableDate{
			ID:       r.nextUnavailableID,
			BarberID: barberID,
			Date:     d,
		}
		inserted++
	}
	return inserted
}

func (r *MemoryRepository) DeleteUnavailableRange(
	ctx context.Context,
	barberID uint,
	start civil.Date,
	end civil.Date,
) (int64, error) {

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deleteUnavailableLocked(barberID, start, end), nil
}

func (r *MemoryRepository) deleteUnavailableLocked(
	barberID uint,
	start civil.Date,
	end civil.Date,
) int64 {

	var removed int64
	for key := range r.unavailable {
		if key.barberID != barberID {
			continue
		}
		if key.date.Before(start) || key.date.After(end) {
			continue
		}
		delete(r.unavailable, key)
		removed++
	}
	return removed
}

func (r *MemoryRepository) ReplaceUnavailableRange(
	ctx context.Context,
	barberID uint,
	oldStart civil.Date,
	oldEnd civil.Date,
	newDates []civil.Date,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	r.deleteUnavailableLocked(barberID, oldStart, oldEnd)
	r.insertUnavailableLocked(barberID, newDates)
	return nil
}

func (r *MemoryRepository) ListUnavailableDates(
	ctx context.Context,
	barberID uint,
) ([]civil.Date, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	dates := make([]civil.Date, 0)
	for key := range r.unavailable {
		if key.barberID == barberID {
			dates = append(dates, key.date)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

// Compile-time check
var _ domain.Repository = (*MemoryRepository)(nil)
