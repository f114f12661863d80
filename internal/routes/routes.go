package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	"github.com/BruksfildServices01/agenda-api/internal/config"
	"github.com/BruksfildServices01/agenda-api/internal/domain"
	"github.com/BruksfildServices01/agenda-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/agenda-api/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-api/internal/middleware"
	"github.com/BruksfildServices01/agenda-api/internal/models"
	ucAppointment "github.com/BruksfildServices01/agenda-api/internal/usecase/appointment"
	ucAvailability "github.com/BruksfildServices01/agenda-api/internal/usecase/availability"
	ucProfessional "github.com/BruksfildServices01/agenda-api/internal/usecase/professional"
	ucUser "github.com/BruksfildServices01/agenda-api/internal/usecase/user"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
	auditRec audit.Recorder,
) error {

	handlers.RegisterValidators()

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	txManager := infraRepo.NewTxManager(db)
	clock := domain.SystemClock{}

	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	availabilityRepo := infraRepo.NewAvailabilityGormRepository(db)
	professionalRepo := infraRepo.NewProfessionalGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)
	auditLogRepo := infraRepo.NewAuditLogGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		txManager,
		clock,
		auditRec,
		log,
	)
	listMyAppointmentsUC := ucAppointment.NewListMyAppointments(appointmentRepo)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		clock,
		cfg.MinCancelHours,
		auditRec,
		log,
	)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		clock,
		auditRec,
	)

	publishAvailabilityUC := ucAvailability.NewPublishAvailability(
		availabilityRepo,
		txManager,
		auditRec,
		log,
	)
	listAvailabilityUC := ucAvailability.NewListAvailability(availabilityRepo)
	retractAvailabilityUC := ucAvailability.NewRetractAvailability(availabilityRepo, auditRec)

	promoteUC := ucProfessional.NewPromoteToProfessional(
		professionalRepo,
		txManager,
		auditRec,
		log,
	)
	listProfessionalsUC := ucProfessional.NewListProfessionals(professionalRepo)
	getProfessionalUC := ucProfessional.NewGetProfessional(professionalRepo)

	getUserUC := ucUser.NewGetUser(userRepo)
	listUsersUC := ucUser.NewListUsers(userRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listMyAppointmentsUC,
		cancelAppointmentUC,
		completeAppointmentUC,
	)
	availabilityHandler := handlers.NewAvailabilityHandler(
		publishAvailabilityUC,
		listAvailabilityUC,
		retractAvailabilityUC,
	)
	professionalHandler := handlers.NewProfessionalHandler(
		promoteUC,
		listProfessionalsUC,
		getProfessionalUC,
	)
	userHandler := handlers.NewUserHandler(getUserUC, listUsersUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogRepo)
	healthHandler := handlers.NewHealthHandler(sqlDB)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/health", healthHandler.Health)
	if cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.GET("/availability/:professionalId", availabilityHandler.List)
	r.GET("/professionals", professionalHandler.List)
	r.GET("/professionals/:id", professionalHandler.Get)

	// ======================================================
	// AUTHENTICATED
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		clientOnly := middleware.RequireRole(models.RoleClient)
		professionalOnly := middleware.RequireRole(models.RoleProfessional)
		adminOnly := middleware.RequireRole(models.RoleAdmin)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		secured.POST("/appointments", clientOnly, appointmentHandler.Create)
		secured.GET("/appointments/my", appointmentHandler.ListMine)
		secured.DELETE("/appointments/:id", appointmentHandler.Cancel)
		secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

		// ------------------------------
		// AVAILABILITY
		// ------------------------------
		secured.POST("/availability", professionalOnly, availabilityHandler.Publish)
		secured.DELETE("/availability/:id", professionalOnly, availabilityHandler.Retract)

		// ------------------------------
		// USERS / ADMIN
		// ------------------------------
		secured.GET("/users/me", userHandler.Me)
		secured.GET("/users", adminOnly, userHandler.List)
		secured.GET("/users/:id", adminOnly, userHandler.Get)

		secured.POST("/professionals", adminOnly, professionalHandler.Promote)
		secured.GET("/audit-logs", adminOnly, auditLogsHandler.List)
	}

	return nil
}
