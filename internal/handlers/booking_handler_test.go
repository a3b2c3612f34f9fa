package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/infra/repository"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/models"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/notify"
	ucAvailability "github.com/ZenKhalil/ExamProject-Barbershop-app/internal/usecase/availability"
	ucBooking "github.com/ZenKhalil/ExamProject-Barbershop-app/internal/usecase/booking"
)

type droppingSink struct{}

func (droppingSink) Send(notify.BookingConfirmed) error { return nil }

func newTestRouter(t *testing.T) (*gin.Engine, *repository.MemoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepository()
	repo.AddBarber(models.Barber{ID: 1, Name: "Victor"})
	repo.AddService(models.Service{ID: 1, Name: "Haircut", DurationMin: 30, IsMain: true})
	repo.AddService(models.Service{ID: 2, Name: "Hair Wash", DurationMin: 15})

	log := zerolog.Nop()

	bookingHandler := NewBookingHandler(
		ucBooking.NewCreateBooking(repo, droppingSink{}, log),
		ucBooking.NewDeleteBooking(repo, log),
		ucBooking.NewListUnavailableTimeslots(repo),
		ucBooking.NewListBookings(repo),
	)
	availabilityHandler := NewAvailabilityHandler(
		ucAvailability.NewMarkUnavailable(repo, log),
		ucAvailability.NewReplaceUnavailableRange(repo, log),
		ucAvailability.NewRemoveUnavailable(repo, log),
		ucAvailability.NewListUnavailableDates(repo),
	)

	r := gin.New()
	r.GET("/api/barbers", NewBarberHandler(repo).List)
	r.POST("/api/bookings", bookingHandler.Create)
	r.GET("/api/bookings", bookingHandler.List)
	r.GET("/api/bookings/unavailable-timeslots", bookingHandler.UnavailableTimeslots)
	r.DELETE("/api/bookings/:id", bookingHandler.Delete)
	r.POST("/api/barbers/:barberId/unavailable-dates", availabilityHandler.Mark)
	r.PUT("/api/barbers/:barberId/unavailable-dates", availabilityHandler.Replace)
	r.DELETE("/api/barbers/:barberId/unavailable-dates", availabilityHandler.Remove)
	r.GET("/api/barbers/:barberId/unavailable-dates", availabilityHandler.List)
	return r, repo
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func bookingPayload() map[string]any {
	return map[string]any{
		"customer_name":  "Alice Jensen",
		"customer_email": "alice@example.com",
		"customer_phone": "12345678",
		"booking_date":   "2026-09-14",
		"booking_time":   "10:00",
		"barber_id":      1,
		"services":       []uint{1},
	}
}

func TestListBarbersEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/barbers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var barbers []models.Barber
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &barbers))
	require.Len(t, barbers, 1)
	assert.Equal(t, "Victor", barbers[0].Name)
}

func TestCreateBookingEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", bookingPayload())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode(t, w)
	assert.NotEmpty(t, body["reference"])
	assert.Equal(t, "10:30", body["end_time"])
	assert.NotContains(t, body, "warning")
}

func TestCreateBookingEndpointConflict(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", bookingPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/bookings", bookingPayload())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "slot_taken", decode(t, w)["error_code"])
}

func TestCreateBookingEndpointValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, "validation_error", body["error_code"])
	assert.Len(t, body["fields"], 6)
}

func TestCreateBookingEndpointUnknownBarber(t *testing.T) {
	r, _ := newTestRouter(t)

	payload := bookingPayload()
	payload["barber_id"] = 99
	w := doJSON(t, r, http.MethodPost, "/api/bookings", payload)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "barber_not_found", decode(t, w)["error_code"])
}

func TestUnavailableTimeslotsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", bookingPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodGet,
		"/api/bookings/unavailable-timeslots?barberId=1&date=2026-09-14", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var slots []map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &slots))
	require.Len(t, slots, 1)
	assert.Equal(t, "2026-09-14T10:00", slots[0]["start"])
	assert.Equal(t, "2026-09-14T10:30", slots[0]["end"])
}

func TestUnavailableTimeslotsEndpointMissingBarber(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/unavailable-timeslots", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteBookingEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", bookingPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/bookings/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/bookings/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/bookings/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnavailableDatesEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/barbers/1/unavailable-dates", map[string]any{
		"start_date": "2026-10-01",
		"end_date":   "2026-10-03",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.EqualValues(t, 3, decode(t, w)["affectedRows"])

	// Booking on a blocked day is refused.
	payload := bookingPayload()
	payload["booking_date"] = "2026-10-02"
	w = doJSON(t, r, http.MethodPost, "/api/bookings", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "barber_unavailable", decode(t, w)["error_code"])

	w = doJSON(t, r, http.MethodPut, "/api/barbers/1/unavailable-dates", map[string]any{
		"old_start_date": "2026-10-01",
		"old_end_date":   "2026-10-03",
		"new_start_date": "2026-11-01",
		"new_end_date":   "2026-11-02",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/barbers/1/unavailable-dates", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var dates []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dates))
	assert.Equal(t, []string{"2026-11-01", "2026-11-02"}, dates)

	w = doJSON(t, r, http.MethodDelete, "/api/barbers/1/unavailable-dates", map[string]any{
		"start_date": "2026-11-01",
		"end_date":   "2026-11-02",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, decode(t, w)["affectedRows"])

	w = doJSON(t, r, http.MethodDelete, "/api/barbers/1/unavailable-dates", map[string]any{
		"start_date": "2026-11-01",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
