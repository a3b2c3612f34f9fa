package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/config"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/handlers"
	infraRepo "github.com/ZenKhalil/ExamProject-Barbershop-app/internal/infra/repository"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/middleware"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/notify"
	ucAvailability "github.com/ZenKhalil/ExamProject-Barbershop-app/internal/usecase/availability"
	ucBooking "github.com/ZenKhalil/ExamProject-Barbershop-app/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log zerolog.Logger,
	sink notify.Sink,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	// ======================================================
	// USE CASES: BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, sink, log)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, log)
	listTimeslotsUC := ucBooking.NewListUnavailableTimeslots(bookingRepo)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	// ======================================================
	// USE CASES: AVAILABILITY
	// ======================================================
	markUnavailableUC := ucAvailability.NewMarkUnavailable(bookingRepo, log)
	replaceUnavailableUC := ucAvailability.NewReplaceUnavailableRange(bookingRepo, log)
	removeUnavailableUC := ucAvailability.NewRemoveUnavailable(bookingRepo, log)
	listUnavailableUC := ucAvailability.NewListUnavailableDates(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	barberHandler := handlers.NewBarberHandler(bookingRepo)
	serviceHandler := handlers.NewServiceHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		deleteBookingUC,
		listTimeslotsUC,
		listBookingsUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(
		markUnavailableUC,
		replaceUnavailableUC,
		removeUnavailableUC,
		listUnavailableUC,
	)

	// Public booking creation is rate limited when redis is configured.
	createBookingChain := []gin.HandlerFunc{bookingHandler.Create}
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		limiter := middleware.RateLimitMiddleware(rdb, 30, time.Minute, log)
		createBookingChain = []gin.HandlerFunc{limiter, bookingHandler.Create}
	}

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/admin/login", authHandler.Login)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:barberId/unavailable-dates", availabilityHandler.List)

		api.GET("/services", serviceHandler.List)

		api.POST("/bookings", createBookingChain...)
		api.GET("/bookings/unavailable-timeslots", bookingHandler.UnavailableTimeslots)

		// ------------------------------
		// STAFF
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/bookings", bookingHandler.List)
			secured.DELETE("/bookings/:id", bookingHandler.Delete)

			secured.POST("/barbers/:barberId/unavailable-dates", availabilityHandler.Mark)
			secured.PUT("/barbers/:barberId/unavailable-dates", availabilityHandler.Replace)
			secured.DELETE("/barbers/:barberId/unavailable-dates", availabilityHandler.Remove)

			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:serviceId", serviceHandler.Update)
			secured.DELETE("/services/:serviceId", serviceHandler.Delete)
		}
	}
}
