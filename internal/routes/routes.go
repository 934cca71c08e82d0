package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/VelvetRowStudio/salon-manager/internal/audit"
	"github.com/VelvetRowStudio/salon-manager/internal/config"
	"github.com/VelvetRowStudio/salon-manager/internal/handlers"
	infraRepo "github.com/VelvetRowStudio/salon-manager/internal/infra/repository"
	"github.com/VelvetRowStudio/salon-manager/internal/middleware"
	"github.com/VelvetRowStudio/salon-manager/internal/models"
	"github.com/VelvetRowStudio/salon-manager/internal/realtime"
	"github.com/VelvetRowStudio/salon-manager/internal/undo"
	ucAppointment "github.com/VelvetRowStudio/salon-manager/internal/usecase/appointment"
	ucReview "github.com/VelvetRowStudio/salon-manager/internal/usecase/review"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var feedSink realtime.Sink = realtime.NopSink{}
	if cfg.RedisURL != "" {
		sink, err := realtime.NewRedisSink(cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("redis feed disabled")
		} else {
			feedSink = sink
		}
	}
	feed := realtime.NewDispatcher(feedSink)

	undoBuffer := undo.New(cfg.UndoWindow)

	// ======================================================
	// USE CASES
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(appointmentRepo, auditDispatcher, feed)
	claimUC := ucAppointment.NewClaimAppointment(appointmentRepo, auditDispatcher, feed)
	statusUC := ucAppointment.NewUpdateStatus(appointmentRepo, auditDispatcher, feed)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher, feed)
	deleteUC := ucAppointment.NewDeleteAppointment(appointmentRepo, undoBuffer, auditDispatcher, feed)
	undoUC := ucAppointment.NewUndoDelete(appointmentRepo, undoBuffer, auditDispatcher, feed)

	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)
	listByClientUC := ucAppointment.NewListByClient(appointmentRepo)
	listUnclaimedUC := ucAppointment.NewListUnclaimed(appointmentRepo)
	scheduleUC := ucAppointment.NewListForWorkerByDate(appointmentRepo)

	submitReviewUC := ucReview.NewSubmitReview(appointmentRepo, auditDispatcher, feed)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(db, availabilityUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		cancelUC,
		deleteUC,
		undoUC,
		listByClientUC,
	)

	workerHandler := handlers.NewWorkerHandler(
		claimUC,
		statusUC,
		cancelUC,
		listUnclaimedUC,
		scheduleUC,
	)

	reviewHandler := handlers.NewReviewHandler(submitReviewUC)

	serviceHandler := handlers.NewServiceHandler(db)
	productHandler := handlers.NewProductHandler(db)
	saleHandler := handlers.NewSaleHandler(db, auditDispatcher)
	adminHandler := handlers.NewAdminHandler(db, auditDispatcher)
	salonHandler := handlers.NewSalonHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

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
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/availability", publicHandler.Availability)
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
			secured.PATCH("/me", meHandler.UpdateMe)

			// ------------------------------
			// CLIENT
			// ------------------------------
			client := secured.Group("/")
			client.Use(middleware.RequireRole(models.RoleClient))
			{
				client.POST("/appointments", appointmentHandler.Book)
				client.GET("/appointments", appointmentHandler.ListMine)
				client.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
				client.DELETE("/appointments/:id", appointmentHandler.Delete)
				client.POST("/appointments/undo", appointmentHandler.Undo)

				client.PUT("/appointments/:id/review", reviewHandler.Submit)
			}

			// ------------------------------
			// WORKER
			// ------------------------------
			worker := secured.Group("/worker")
			worker.Use(middleware.RequireRole(models.RoleWorker))
			{
				worker.GET("/appointments/unclaimed", workerHandler.ListUnclaimed)
				worker.GET("/appointments", workerHandler.ScheduleByDate)
				worker.PATCH("/appointments/:id/claim", workerHandler.Claim)
				worker.PATCH("/appointments/:id/complete", workerHandler.Complete)
				worker.PATCH("/appointments/:id/cancel", workerHandler.Cancel)

				worker.POST("/sales", saleHandler.Record)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/users", adminHandler.ListUsers)
				admin.POST("/workers", adminHandler.CreateWorker)
				admin.PATCH("/users/:id/active", adminHandler.SetUserActive)

				admin.GET("/services", serviceHandler.List)
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)

				admin.GET("/products", productHandler.List)
				admin.POST("/products", productHandler.Create)
				admin.PATCH("/products/:id", productHandler.Update)

				admin.GET("/salon", salonHandler.Get)
				admin.PATCH("/salon", salonHandler.Update)

				admin.GET("/reports/daily", saleHandler.DailyReport)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
