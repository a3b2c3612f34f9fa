package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/config"
	dbpkg "github.com/ZenKhalil/ExamProject-Barbershop-app/internal/db"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/logging"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/metrics"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/middleware"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/notify"
	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logging.New(cfg)

	db := dbpkg.NewDB(cfg)

	metrics.Register()

	// The dispatcher outlives the HTTP server so confirmations queued
	// during shutdown still get delivered before exit.
	mailer := notify.NewMailer(cfg)
	dispatcher := notify.NewDispatcher(mailer, log)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log, dispatcher)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	dispatcher.Close()
}
