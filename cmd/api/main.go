package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/shadysnails/salon-scheduler/internal/cache"
	"github.com/shadysnails/salon-scheduler/internal/config"
	dbpkg "github.com/shadysnails/salon-scheduler/internal/db"
	infraRepo "github.com/shadysnails/salon-scheduler/internal/infra/repository"
	"github.com/shadysnails/salon-scheduler/internal/metrics"
	"github.com/shadysnails/salon-scheduler/internal/notify"
	"github.com/shadysnails/salon-scheduler/internal/reminders"
	"github.com/shadysnails/salon-scheduler/internal/routes"
	"github.com/shadysnails/salon-scheduler/internal/timezone"
)

func main() {

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.TimeFieldFormat = time.RFC3339

	cfg := config.Load()
	timezone.Configure(cfg.Timezone)

	db := dbpkg.NewDB(cfg, logger)

	metrics.Register()

	mailer := notify.NewMailer(cfg)
	if !mailer.Enabled() {
		logger.Warn().Msg("smtp not configured, notifications run in simulation mode")
	}
	dispatcher := notify.NewDispatcher(mailer, logger)
	defer dispatcher.Close()

	availabilityCache := cache.NewAvailability(cfg.RedisAddr, logger)
	if availabilityCache == nil {
		logger.Warn().Msg("redis not configured, availability cache disabled")
	}

	reminderScheduler := reminders.NewScheduler(
		infraRepo.NewAppointmentGormRepository(db),
		dispatcher,
		logger,
	)
	if err := reminderScheduler.Start(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start reminder scheduler")
	}
	defer reminderScheduler.Stop()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, dispatcher, availabilityCache)

	logger.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
