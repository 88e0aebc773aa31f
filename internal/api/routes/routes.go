package routes

import (
	"fmt"

	"graduation-portal-backend/internal/api/handlers"
	"graduation-portal-backend/internal/api/middleware"
	"graduation-portal-backend/internal/auth"
	"graduation-portal-backend/internal/config"
	"graduation-portal-backend/internal/database/models"
	"graduation-portal-backend/internal/notification"
	"graduation-portal-backend/internal/repository"
	"graduation-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Dependencies are the long-lived components the router is built from
type Dependencies struct {
	Store      repository.Store
	Dispatcher *notification.Dispatcher
	Registry   notification.SessionRegistry
	// Checks are extra readiness checks, keyed by service name
	Checks map[string]handlers.Pinger
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps Dependencies, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()
	limits := service.Limits{
		TeamMaxMembers:     cfg.TeamMaxMembers,
		SupervisorMaxTeams: cfg.SupervisorMaxTeams,
	}

	// Initialize services
	teamService := service.NewTeamService(deps.Store, deps.Dispatcher, validate, limits)
	ideaService := service.NewProjectIdeaService(deps.Store, deps.Dispatcher, validate)
	taskService := service.NewTaskService(deps.Store, deps.Dispatcher, validate)
	notificationService := service.NewNotificationService(deps.Store, deps.Registry)

	authService, err := auth.NewAuthService(cfg.JWTSecret, deps.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.Store, Version, deps.Checks)
	teamHandler := handlers.NewTeamHandler(teamService)
	ideaHandler := handlers.NewProjectIdeaHandler(ideaService)
	taskHandler := handlers.NewTaskHandler(taskService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Health check routes (no authentication required)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// The notification stream sits outside the v1 group so it alone accepts a query token
	router.GET("/api/v1/notifications/stream", authMiddleware.RequireStreamAuth(), notificationHandler.Stream)

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	studentOnly := authMiddleware.RequireRole(models.RoleStudent)
	supervisorOnly := authMiddleware.RequireRole(models.RoleSupervisor)

	teams := v1.Group("/teams")
	{
		teams.GET("", teamHandler.ListTeams)
		teams.GET("/:id", teamHandler.GetTeam)
		teams.POST("", studentOnly, teamHandler.CreateTeam)
		teams.PUT("/:id", studentOnly, teamHandler.UpdateTeam)
		teams.DELETE("/:id", studentOnly, teamHandler.DeleteTeam)
		teams.POST("/:id/join-requests", studentOnly, teamHandler.RequestToJoin)
		teams.GET("/:id/join-requests", studentOnly, teamHandler.ListJoinRequests)
	}
	v1.POST("/join-requests/:id/respond", studentOnly, teamHandler.RespondToJoinRequest)

	students := v1.Group("/students/me", studentOnly)
	{
		students.GET("/join-requests", teamHandler.ListMyJoinRequests)
		students.POST("/leave-team", teamHandler.LeaveTeam)
		students.DELETE("", teamHandler.DeleteStudent)
	}

	ideas := v1.Group("/ideas")
	{
		ideas.GET("/:id", ideaHandler.GetIdea)
		ideas.GET("", studentOnly, ideaHandler.ListTeamIdeas)
		ideas.POST("", studentOnly, ideaHandler.PublishIdea)
		ideas.PUT("/:id", studentOnly, ideaHandler.UpdateIdea)
		ideas.DELETE("/:id", studentOnly, ideaHandler.DeleteIdea)
		ideas.POST("/:id/requests", studentOnly, ideaHandler.RequestSupervisor)
		ideas.GET("/:id/requests", studentOnly, ideaHandler.ListIdeaRequests)
		ideas.POST("/:id/complete", supervisorOnly, ideaHandler.MarkProjectCompleted)
	}

	supervisors := v1.Group("/supervisors")
	{
		supervisors.GET("", ideaHandler.ListSupervisors)
		supervisors.DELETE("/me", supervisorOnly, teamHandler.DeleteSupervisor)
	}

	supervision := v1.Group("/supervision-requests", supervisorOnly)
	{
		supervision.GET("", ideaHandler.ListSupervisionRequests)
		supervision.POST("/:id/respond", ideaHandler.HandleIdeaRequest)
	}

	tasks := v1.Group("/tasks")
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.POST("", supervisorOnly, taskHandler.CreateTask)
		tasks.PATCH("/:id/status", studentOnly, taskHandler.ChangeStatus)
		tasks.POST("/:id/submission", studentOnly, taskHandler.SubmitTask)
		tasks.POST("/:id/review", supervisorOnly, taskHandler.ReviewTask)
		tasks.PUT("/:id/assignee", supervisorOnly, taskHandler.ReassignTask)
		tasks.DELETE("/:id", supervisorOnly, taskHandler.DeleteTask)
	}

	notifications := v1.Group("/notifications")
	{
		notifications.GET("", notificationHandler.ListNotifications)
		notifications.GET("/unread-count", notificationHandler.UnreadCount)
		notifications.POST("/read-all", notificationHandler.MarkAllRead)
		notifications.POST("/:id/read", notificationHandler.MarkRead)
	}

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(store repository.Store) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(store, Version, nil)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
