package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/jellomark/beautishop-scheduler/internal/audit"
	"github.com/jellomark/beautishop-scheduler/internal/clock"
	"github.com/jellomark/beautishop-scheduler/internal/config"
	"github.com/jellomark/beautishop-scheduler/internal/handlers"
	infraCache "github.com/jellomark/beautishop-scheduler/internal/infra/cache"
	infraRepo "github.com/jellomark/beautishop-scheduler/internal/infra/repository"
	"github.com/jellomark/beautishop-scheduler/internal/middleware"
	"github.com/jellomark/beautishop-scheduler/internal/models"
	"github.com/jellomark/beautishop-scheduler/internal/notification"
	"github.com/jellomark/beautishop-scheduler/internal/storage"
	ucReservation "github.com/jellomark/beautishop-scheduler/internal/usecase/reservation"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)
	availabilityCache := infraCache.NewAvailabilityCache(rdb, 5*time.Minute, log)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	notifyDispatcher := notification.NewDispatcher(notification.NewLogSender(log), log)

	imageStore := storage.NewImageStore(cfg)
	clk := clock.System(cfg.Timezone)

	// ======================================================
	// USE CASES - RESERVATIONS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		auditDispatcher,
		notifyDispatcher,
		availabilityCache,
		clk,
	)

	confirmReservationUC := ucReservation.NewConfirmReservation(
		reservationRepo,
		auditDispatcher,
		notifyDispatcher,
		availabilityCache,
		clk,
	)

	rejectReservationUC := ucReservation.NewRejectReservation(
		reservationRepo,
		auditDispatcher,
		notifyDispatcher,
		availabilityCache,
		clk,
	)

	cancelReservationUC := ucReservation.NewCancelReservation(
		reservationRepo,
		auditDispatcher,
		notifyDispatcher,
		availabilityCache,
		clk,
	)

	completeReservationUC := ucReservation.NewCompleteReservation(
		reservationRepo,
		auditDispatcher,
		notifyDispatcher,
		availabilityCache,
		clk,
	)

	noShowReservationUC := ucReservation.NewNoShowReservation(
		reservationRepo,
		auditDispatcher,
		notifyDispatcher,
		availabilityCache,
		clk,
	)

	getReservationUC := ucReservation.NewGetReservation(reservationRepo)
	listMemberReservationsUC := ucReservation.NewListMemberReservations(reservationRepo)
	listShopReservationsUC := ucReservation.NewListShopReservations(reservationRepo)

	availableSlotsUC := ucReservation.NewGetAvailableSlots(reservationRepo, clk)
	availableDatesUC := ucReservation.NewGetAvailableDates(reservationRepo, availabilityCache, clk)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	shopHandler := handlers.NewShopHandler(db, imageStore)
	treatmentHandler := handlers.NewTreatmentHandler(db)
	reviewHandler := handlers.NewReviewHandler(db)
	auditLogHandler := handlers.NewAuditLogHandler(db)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		confirmReservationUC,
		rejectReservationUC,
		cancelReservationUC,
		completeReservationUC,
		noShowReservationUC,
		getReservationUC,
		listMemberReservationsUC,
		listShopReservationsUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(availableSlotsUC, availableDatesUC)

	// ======================================================
	// METRICS
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/shops", shopHandler.List)
		api.GET("/shops/:shopId", shopHandler.Get)
		api.GET("/shops/:shopId/treatments", treatmentHandler.ListByShop)
		api.GET("/shops/:shopId/reviews", reviewHandler.ListByShop)
		api.GET("/shops/:shopId/availability/slots", availabilityHandler.Slots)
		api.GET("/shops/:shopId/availability/dates", availabilityHandler.Dates)

		// ------------------------------
		// MEMBER
		// ------------------------------
		member := api.Group("/")
		member.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(models.RoleMember))
		{
			member.POST("/reservations", reservationHandler.Create)
			member.GET("/reservations", reservationHandler.ListMine)
			member.POST("/reservations/:reservationId/cancel", reservationHandler.Cancel)

			member.POST("/reviews", reviewHandler.Create)
		}

		// ------------------------------
		// OWNER
		// ------------------------------
		owner := api.Group("/owner")
		owner.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(models.RoleOwner))
		{
			owner.POST("/shops", shopHandler.Create)
			owner.GET("/shops", shopHandler.ListMine)
			owner.PUT("/shops/:shopId", shopHandler.Update)
			owner.DELETE("/shops/:shopId", shopHandler.Delete)
			owner.POST("/shops/:shopId/images", shopHandler.UploadImage)

			owner.POST("/shops/:shopId/treatments", treatmentHandler.Create)
			owner.PUT("/shops/:shopId/treatments/:treatmentId", treatmentHandler.Update)
			owner.DELETE("/shops/:shopId/treatments/:treatmentId", treatmentHandler.Delete)

			owner.GET("/shops/:shopId/reservations", reservationHandler.ListByShop)
			owner.POST("/reservations/:reservationId/confirm", reservationHandler.Confirm)
			owner.POST("/reservations/:reservationId/reject", reservationHandler.Reject)
			owner.POST("/reservations/:reservationId/complete", reservationHandler.Complete)
			owner.POST("/reservations/:reservationId/no-show", reservationHandler.NoShow)

			owner.GET("/shops/:shopId/audit-logs", auditLogHandler.ListByShop)
		}

		// ------------------------------
		// SHARED (ANY AUTHENTICATED)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/reservations/:reservationId", reservationHandler.Get)
		}
	}
}
