package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/schedulingco/scheduler-api/internal/audit"
	"github.com/schedulingco/scheduler-api/internal/config"
	"github.com/schedulingco/scheduler-api/internal/handlers"
	"github.com/schedulingco/scheduler-api/internal/middleware"
	"github.com/schedulingco/scheduler-api/internal/models"
	"github.com/schedulingco/scheduler-api/internal/store"
	usecase "github.com/schedulingco/scheduler-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, st *store.Store, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(st, log)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES
	// ======================================================
	resolveSlotsUC := usecase.NewResolveSlots(st)
	bookAppointmentUC := usecase.NewBookAppointment(st, auditDispatcher)
	listScheduleUC := usecase.NewListSchedule(st)
	listMonthUC := usecase.NewListMonth(st)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(st, cfg, auditDispatcher)
	meHandler := handlers.NewMeHandler(st)

	publicHandler := handlers.NewPublicHandler(st, resolveSlotsUC)
	bookingHandler := handlers.NewBookingHandler(st, bookAppointmentUC)
	flowHandler := handlers.NewFlowHandler(st, resolveSlotsUC, bookAppointmentUC)

	businessHandler := handlers.NewBusinessHandler(st, auditDispatcher)
	scheduleHandler := handlers.NewScheduleHandler(listScheduleUC, listMonthUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(st)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/businesses", publicHandler.ListBusinesses)
			publicAPI.GET("/businesses/:id", publicHandler.GetBusiness)
			publicAPI.GET("/businesses/:id/slots", publicHandler.Slots)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// CUSTOMER: BOOKING
			// ------------------------------
			customer := secured.Group("/")
			customer.Use(middleware.RequireRole(models.RoleCustomer))
			{
				customer.POST("/bookings", bookingHandler.Create)

				customer.GET("/flow", flowHandler.Current)
				customer.POST("/flow/business", flowHandler.SelectBusiness)
				customer.POST("/flow/date", flowHandler.SelectDate)
				customer.POST("/flow/time", flowHandler.SelectTime)
				customer.POST("/flow/cancel-time", flowHandler.CancelTime)
				customer.POST("/flow/submit", flowHandler.Submit)
				customer.POST("/flow/reset", flowHandler.Reset)
			}

			// ------------------------------
			// BUSINESS: PROFILE / SCHEDULE
			// ------------------------------
			business := secured.Group("/me")
			business.Use(middleware.RequireRole(models.RoleBusiness))
			{
				business.GET("/profile", businessHandler.GetProfile)
				business.PUT("/profile", businessHandler.UpdateProfile)

				business.GET("/availability", businessHandler.GetAvailability)
				business.PUT("/availability", businessHandler.UpdateAvailability)

				business.GET("/schedule", scheduleHandler.ByDate)
				business.GET("/schedule/month", scheduleHandler.ByMonth)

				business.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
