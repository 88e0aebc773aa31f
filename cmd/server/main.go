package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"graduation-portal-backend/internal/api/handlers"
	"graduation-portal-backend/internal/api/routes"
	"graduation-portal-backend/internal/config"
	"graduation-portal-backend/internal/database"
	"graduation-portal-backend/internal/logger"
	"graduation-portal-backend/internal/notification"
	"graduation-portal-backend/internal/repository"
	"graduation-portal-backend/internal/repository/memory"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	_ "graduation-portal-backend/docs" // This is needed for swag
)

//	@title			Graduation Portal Backend API
//	@version		1.0
//	@description	This is the backend API for the Graduation Portal, providing endpoints for team membership, project ideas, supervision requests, tasks, and notifications.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 15 * time.Second

var rootCmd = &cobra.Command{
	Use:   "graduation-portal",
	Short: "Graduation project workflow backend",
	Long: `Graduation Portal serves the team, project idea, task and notification
workflows of the graduation project course over a REST API.`,
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE:  runMigrate,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is ./config.yaml)")
	_ = viper.BindPFlag(config.ConfigFileKey, rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap loads the environment, configuration and logging shared by every command
func bootstrap() (*config.Config, error) {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	setupLogging(cfg.LogLevel)
	return cfg, nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}
	if cfg.StoreDriver != config.StoreDriverPostgres {
		return fmt.Errorf("migrate requires the %s store driver", config.StoreDriverPostgres)
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{SkipMigrate: true})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	logrus.Info("Database schema is up to date")
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	registry := notification.NewRegistry(0)
	checks := make(map[string]handlers.Pinger)

	var sink notification.Sink = notification.NewRegistrySink(registry)
	if cfg.RedisEnabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()

		sink = notification.NewRedisSink(client, cfg.NotificationChannel)
		checks["redis"] = handlers.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})

		relay := notification.NewRelay(client, cfg.NotificationChannel, registry)
		go func() {
			if err := relay.Run(ctx); err != nil {
				logrus.WithError(err).Error("Notification relay stopped")
			}
		}()
	}

	dispatcher := notification.NewDispatcher(sink, notification.DispatcherOptions{
		Workers:   cfg.NotificationWorkers,
		QueueSize: cfg.NotificationQueue,
	})
	defer dispatcher.Close()

	router, err := routes.SetupRoutes(routes.Dependencies{
		Store:      store,
		Dispatcher: dispatcher,
		Registry:   registry,
		Checks:     checks,
	}, cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	// Open notification streams never go idle, so end them when shutdown begins
	srv.RegisterOnShutdown(func() {
		closed := registry.CloseAll()
		logrus.WithField("sessions", closed).Info("Closed notification streams")
	})

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logrus.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func openStore(cfg *config.Config) (repository.Store, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logrus.Warn("Using the in-memory store; data is lost on restart")
		return memory.NewStore(), nil
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return repository.NewGormStore(db), nil
}

func setupLogging(level string) {
	logrus.SetOutput(os.Stdout)
	logger.Setup(level)
}
