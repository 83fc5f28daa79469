package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	"github.com/BruksfildServices01/barber-agenda/internal/config"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-agenda/internal/handlers"
	"github.com/BruksfildServices01/barber-agenda/internal/infra/lock"
	infraRepo "github.com/BruksfildServices01/barber-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/barber-agenda/internal/middleware"
	"github.com/BruksfildServices01/barber-agenda/internal/notify"
	ucAppointment "github.com/BruksfildServices01/barber-agenda/internal/usecase/appointment"
	ucWaiting "github.com/BruksfildServices01/barber-agenda/internal/usecase/waitinglist"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, locker lock.BarberLocker) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	var appointmentRepo domain.Repository = infraRepo.NewAppointmentGormRepository(db)

	auditDispatcher := audit.NewDispatcher(db)
	notifier := notify.NewDispatcher(notify.LogNotifier{})

	// ======================================================
	// 🧠 USE CASES — WAITING LIST
	// ======================================================
	enqueueUC := ucWaiting.NewEnqueue(appointmentRepo, auditDispatcher)
	removeWaitingUC := ucWaiting.NewRemove(appointmentRepo, auditDispatcher)
	listWaitingUC := ucWaiting.NewList(appointmentRepo)
	promoteUC := ucWaiting.NewPromoteNext(appointmentRepo, auditDispatcher, notifier)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		locker,
		auditDispatcher,
		notifier,
	)

	transitionAppointmentUC := ucAppointment.NewTransitionAppointment(
		appointmentRepo,
		auditDispatcher,
		notifier,
		promoteUC,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	barbershopHandler := handlers.NewBarbershopHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	barberHandler := handlers.NewBarberHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	blockedHandler := handlers.NewBlockedHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		availabilityUC,
		createAppointmentUC,
		transitionAppointmentUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
	)

	waitingListHandler := handlers.NewWaitingListHandler(
		listWaitingUC,
		removeWaitingUC,
		promoteUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		appointmentRepo,
		availabilityUC,
		createAppointmentUC,
		transitionAppointmentUC,
		enqueueUC,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (booking por slug, sem login)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
			publicAPI.POST("/:slug/waiting-list", publicHandler.JoinWaitingList)

			// cancelamento pelo manage token devolvido na criação
			publicAPI.POST("/appointments/:token/cancel", publicHandler.CancelByToken)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA (painel)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/barbershop", barbershopHandler.GetMeBarbershop)
			secured.PATCH("/me/barbershop", barbershopHandler.UpdateMeBarbershop)

			secured.GET("/me/clients", clientHandler.List)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/barbers", barberHandler.List)
			secured.POST("/me/barbers", barberHandler.Create)
			secured.PATCH("/me/barbers/:id", barberHandler.Update)

			secured.GET("/me/working-hours", workingHoursHandler.Get)
			secured.PUT("/me/working-hours", workingHoursHandler.Update)

			secured.GET("/me/blocked-dates", blockedHandler.ListDates)
			secured.POST("/me/blocked-dates", blockedHandler.CreateDate)
			secured.DELETE("/me/blocked-dates/:id", blockedHandler.DeleteDate)

			secured.GET("/me/blocked-slots", blockedHandler.ListSlots)
			secured.POST("/me/blocked-slots", blockedHandler.CreateSlot)
			secured.DELETE("/me/blocked-slots/:id", blockedHandler.DeleteSlot)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/availability", appointmentHandler.Availability)
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)

			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Transition(domain.StatusConfirmed))
			secured.PATCH("/me/appointments/:id/pay", appointmentHandler.Transition(domain.StatusPaid))
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Transition(domain.StatusCompleted))
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Transition(domain.StatusCancelled))
			secured.PATCH("/me/appointments/:id/decline", appointmentHandler.Transition(domain.StatusDeclined))

			// ------------------------------
			// WAITING LIST
			// ------------------------------
			secured.GET("/me/waiting-list", waitingListHandler.List)
			secured.DELETE("/me/waiting-list/:clientId", waitingListHandler.Remove)
			secured.POST("/me/waiting-list/promote", waitingListHandler.Promote)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
