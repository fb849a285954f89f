package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/shadysnails/salon-scheduler/internal/cache"
	"github.com/shadysnails/salon-scheduler/internal/config"
	domain "github.com/shadysnails/salon-scheduler/internal/domain/appointment"
	"github.com/shadysnails/salon-scheduler/internal/handlers"
	infraRepo "github.com/shadysnails/salon-scheduler/internal/infra/repository"
	"github.com/shadysnails/salon-scheduler/internal/middleware"
	"github.com/shadysnails/salon-scheduler/internal/notify"
	ucAppointment "github.com/shadysnails/salon-scheduler/internal/usecase/appointment"
)

// weekTemplate builds the default weekly hours from configuration,
// keeping the built-in template when the configured clocks are bad.
func weekTemplate(cfg *config.Config) domain.WeekTemplate {
	tpl := domain.DefaultWeekTemplate()

	start, err := domain.ParseClock(cfg.DefaultWorkStart)
	if err != nil {
		return tpl
	}
	end, err := domain.ParseClock(cfg.DefaultWorkEnd)
	if err != nil || end <= start {
		return tpl
	}

	tpl.Start = start
	tpl.End = end
	return tpl
}

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	notifier notify.Notifier,
	availabilityCache *cache.Availability,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	tpl := weekTemplate(cfg)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	getAvailabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, tpl)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		notifier,
		tpl,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		notifier,
		tpl,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		notifier,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		notifier,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		notifier,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	workerHandler := handlers.NewWorkerHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	additionalHandler := handlers.NewAdditionalHandler(db)
	customerHandler := handlers.NewCustomerHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db, tpl)

	availabilityHandler := handlers.NewAvailabilityHandler(
		getAvailabilityUC,
		availabilityCache,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		cancelAppointmentUC,
		confirmAppointmentUC,
		completeAppointmentUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
		availabilityCache,
	)

	// ======================================================
	// OPERATIONAL
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/workers", workerHandler.List)
			publicAPI.GET("/services", serviceHandler.List)
			publicAPI.GET("/additionals", additionalHandler.List)
			publicAPI.GET("/availability", availabilityHandler.Get)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// STAFF
			// ------------------------------
			staff := secured.Group("/")
			staff.Use(middleware.RequireRoles("worker", "admin"))
			{
				staff.GET("/appointments", appointmentHandler.ListByDate)
				staff.GET("/appointments/month", appointmentHandler.ListByMonth)
				staff.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
				staff.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

				staff.GET("/customers", customerHandler.List)
				staff.POST("/customers", customerHandler.Create)

				staff.GET("/workers/:workerId/schedule", scheduleHandler.GetWeek)
				staff.PUT("/workers/:workerId/schedule", scheduleHandler.UpdateWeek)
				staff.GET("/workers/:workerId/blocked-dates", scheduleHandler.ListBlocks)
				staff.POST("/workers/:workerId/blocked-dates", scheduleHandler.CreateBlock)
				staff.DELETE("/workers/:workerId/blocked-dates/:id", scheduleHandler.DeleteBlock)
			}

			// ------------------------------
			// ADMIN (CATALOG)
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRoles("admin"))
			{
				admin.POST("/workers", workerHandler.Create)
				admin.PATCH("/workers/:id", workerHandler.Update)

				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)

				admin.POST("/additionals", additionalHandler.Create)
				admin.PATCH("/additionals/:id", additionalHandler.Update)
			}
		}
	}
}
