// Package main is the entry point for the curriculum service
package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"

	_ "github.com/PrometheusDevCreator/Prometheus2.0-sub000/docs"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/handlers"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/identity"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/repositories"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/schedule"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/selection"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/services"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/store"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/views"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/libs/config"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/libs/logger"
	loggerMiddleware "github.com/PrometheusDevCreator/Prometheus2.0-sub000/libs/logger/middleware"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/libs/middlewares"
)

// @title Curriculum Authoring API
// @version 1.0
// @description Course authoring backend: module hierarchy, lesson scheduling and snapshot persistence.

// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.Logger
	log.Info("Starting curriculum service",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Logging.Level),
	)

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db, cfg.Database.DBName); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize the in-memory authoring core
	ids := identity.NewGenerator()
	st := store.New(ids, log)
	deriver := views.NewDeriver(st, log)

	// Initialize repositories
	snapshotRepo := repositories.NewSnapshotRepository(db)

	// Initialize services
	window := schedule.Window{
		StartHour: cfg.Schedule.DayStartHour,
		EndHour:   cfg.Schedule.DayEndHour,
	}
	curriculumService := services.NewCurriculumService(st, deriver, log)
	scheduleService := services.NewScheduleService(st, window, log)
	snapshotService := services.NewSnapshotService(st, snapshotRepo, log)
	selectionMachine := selection.NewMachine()

	// Initialize handlers
	curriculumHandler := handlers.NewCurriculumHandler(curriculumService, log)
	lessonHandler := handlers.NewLessonHandler(curriculumService, log)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, log)
	selectionHandler := handlers.NewSelectionHandler(selectionMachine, log)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService, log)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(loggerMiddleware.LoggerMiddleware(log))
	r.Use(middlewares.RecoveryMiddleware(log))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(10 * 1024 * 1024)) // 10MB

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Routes
	r.Route("/api/v1", func(r chi.Router) {
		curriculumHandler.RegisterRoutes(r)
		lessonHandler.RegisterRoutes(r)
		scheduleHandler.RegisterRoutes(r)
		selectionHandler.RegisterRoutes(r)
		snapshotHandler.RegisterRoutes(r)
	})

	// Setup HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

// connectDB establishes a connection to the MySQL database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations applies pending database migrations
func runMigrations(db *sql.DB, dbName string) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "curriculum_schema_migrations",
		DatabaseName:    dbName,
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		migrationPath = "file://../migrations"
	}

	m, err := migrate.NewWithDatabaseInstance(migrationPath, dbName, driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
