package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/civil"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/httperr"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/infra/repository"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/models"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/notify"
)

// recordingSink captures confirmations instead of sending them.
type recordingSink struct {
	mu     sync.Mutex
	events []notify.BookingConfirmed
	err    error
}

func (s *recordingSink) Send(ev notify.BookingConfirmed) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, ev)
	return nil
}

func newTestRepo() *repository.MemoryRepository {
	repo := repository.NewMemoryRepository()
	repo.AddBarber(models.Barber{ID: 1, Name: "Victor", Email: "victor@shop.test"})
	repo.AddService(models.Service{ID: 1, Name: "Haircut", Price: 250, DurationMin: 30, IsMain: true})
	repo.AddService(models.Service{ID: 2, Name: "Beard Trim", Price: 150, DurationMin: 15, IsMain: true})
	repo.AddService(models.Service{ID: 3, Name: "Hair Wash", Price: 50, DurationMin: 15})
	return repo
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		CustomerName:  "Alice Jensen",
		CustomerEmail: "alice@example.com",
		CustomerPhone: "12345678",
		BarberID:      1,
		Date:          "2026-09-14",
		Time:          "10:00",
		ServiceIDs:    []uint{1},
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	repo := newTestRepo()
	sink := &recordingSink{}
	uc := NewCreateBooking(repo, sink, zerolog.Nop())

	res, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	require.NotNil(t, res.Booking)

	assert.NotEmpty(t, res.Booking.Reference)
	assert.Equal(t, "10:00", res.Booking.BookingTime.String())
	assert.Equal(t, "10:30", res.Booking.EndTime.String())
	assert.Equal(t, "Haircut", res.Booking.ServiceNames)
	assert.Empty(t, res.Warning)

	require.Len(t, sink.events, 1)
	assert.Equal(t, res.Booking.Reference, sink.events[0].Reference)
	assert.Equal(t, "Victor", sink.events[0].BarberName)
}

func TestCreateBookingEndTimeIncludesAddOns(t *testing.T) {
	repo := newTestRepo()
	uc := NewCreateBooking(repo, &recordingSink{}, zerolog.Nop())

	in := validInput()
	in.ServiceIDs = []uint{1, 3}

	res, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	// 30 min haircut + 15 min wash
	assert.Equal(t, "10:45", res.Booking.EndTime.String())
	assert.Equal(t, "Haircut, Hair Wash", res.Booking.ServiceNames)
}

func TestCreateBookingMissingFields(t *testing.T) {
	uc := NewCreateBooking(newTestRepo(), &recordingSink{}, zerolog.Nop())

	_, err := uc.Execute(context.Background(), CreateBookingInput{})
	require.Error(t, err)

	ve, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{
		"customer_name", "customer_email", "booking_date",
		"booking_time", "barber_id", "services",
	}, ve.Fields)
}

func TestCreateBookingInvalidInputs(t *testing.T) {
	uc := NewCreateBooking(newTestRepo(), &recordingSink{}, zerolog.Nop())
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*CreateBookingInput)
		code   string
	}{
		{"bad email", func(in *CreateBookingInput) { in.CustomerEmail = "not-an-email" }, "invalid_email"},
		{"bad date", func(in *CreateBookingInput) { in.Date = "14-09-2026" }, "invalid_date"},
		{"impossible date", func(in *CreateBookingInput) { in.Date = "2026-02-30" }, "invalid_date"},
		{"bad time", func(in *CreateBookingInput) { in.Time = "10.00" }, "invalid_time"},
		{"unknown barber", func(in *CreateBookingInput) { in.BarberID = 99 }, "barber_not_found"},
		{"unknown service", func(in *CreateBookingInput) { in.ServiceIDs = []uint{42} }, "service_not_found"},
		{"two mains", func(in *CreateBookingInput) { in.ServiceIDs = []uint{1, 2} }, "invalid_service_selection"},
		{"add-on only", func(in *CreateBookingInput) { in.ServiceIDs = []uint{3} }, "invalid_service_selection"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := uc.Execute(ctx, in)
			assert.True(t, httperr.IsBusiness(err, tt.code), "want %s, got %v", tt.code, err)
		})
	}
}

func TestCreateBookingOverlapRejected(t *testing.T) {
	repo := newTestRepo()
	uc := NewCreateBooking(repo, &recordingSink{}, zerolog.Nop())
	ctx := context.Background()

	first := validInput() // 10:00-10:30
	_, err := uc.Execute(ctx, first)
	require.NoError(t, err)

	// Starts inside the first booking.
	overlapping := validInput()
	overlapping.Time = "10:15"
	_, err = uc.Execute(ctx, overlapping)
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))

	// Back to back is fine: intervals are half-open.
	adjacent := validInput()
	adjacent.Time = "10:30"
	_, err = uc.Execute(ctx, adjacent)
	assert.NoError(t, err)
}

func TestCreateBookingBarberUnavailable(t *testing.T) {
	repo := newTestRepo()
	uc := NewCreateBooking(repo, &recordingSink{}, zerolog.Nop())
	ctx := context.Background()

	day, err := civil.ParseDate("2026-09-14")
	require.NoError(t, err)
	_, err = repo.InsertUnavailableDates(ctx, 1, []civil.Date{day})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, validInput())
	assert.True(t, httperr.IsBusiness(err, "barber_unavailable"))
}

func TestCreateBookingNotificationFailureIsNonFatal(t *testing.T) {
	repo := newTestRepo()
	sink := &recordingSink{err: errors.New("smtp down")}
	uc := NewCreateBooking(repo, sink, zerolog.Nop())

	res, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, res.Warning)

	// The booking was still persisted.
	bookings, err := repo.ListBookings(context.Background())
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestCreateBookingConcurrentSameSlot(t *testing.T) {
	repo := newTestRepo()
	uc := NewCreateBooking(repo, &recordingSink{}, zerolog.Nop())
	ctx := context.Background()

	const numGoroutines = 10
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	results := make(chan error, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			_, err := uc.Execute(ctx, validInput())
			results <- err
		}()
	}

	wg.Wait()
	close(results)

	successCount := 0
	conflictCount := 0
	for err := range results {
		switch {
		case err == nil:
			successCount++
		case httperr.IsBusiness(err, "slot_taken"):
			conflictCount++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successCount, "exactly one booking should win the slot")
	assert.Equal(t, numGoroutines-1, conflictCount)

	bookings, err := repo.ListBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}
