package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "jobportal-backend/internal/api/http"
	"jobportal-backend/internal/catalog"
	"jobportal-backend/internal/config"
	"jobportal-backend/internal/jobs"
	"jobportal-backend/internal/logger"
	"jobportal-backend/internal/repository/postgres"
	"jobportal-backend/internal/scheduler"
	"jobportal-backend/internal/security"
	"jobportal-backend/internal/service"
	"jobportal-backend/internal/storage"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting job portal backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager)

	// Initialize Blob Storage
	var blobs storage.BlobStorage
	switch cfg.Storage.Type {
	case "", "local":
		logger.Info("Using local blob storage", "upload_dir", cfg.Storage.UploadDir)
		blobs, err = storage.NewLocalStorage(cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize local storage", "error", err)
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
	case "gcs":
		logger.Info("Using GCS blob storage", "bucket", cfg.Storage.Bucket)
		blobs, err = storage.NewGCSStorage(context.Background(), cfg.Storage.Bucket)
		if err != nil {
			logger.Error("Failed to initialize GCS storage", "error", err)
			log.Fatalf("Failed to initialize GCS storage: %v", err)
		}
	default:
		log.Fatalf("Unsupported storage type: %s", cfg.Storage.Type)
	}

	// Initialize Document Requirement Catalog
	entries := make([]catalog.Entry, 0, len(cfg.Catalog.Documents))
	for _, d := range cfg.Catalog.Documents {
		entries = append(entries, catalog.Entry{
			TypeName:     d.Type,
			Extensions:   d.Extensions,
			MaxSizeBytes: d.MaxSizeMB * 1024 * 1024,
		})
	}
	requirementCatalog, err := catalog.NewStaticCatalog(entries)
	if err != nil {
		logger.Error("Failed to build document catalog", "error", err)
		log.Fatalf("Failed to build document catalog: %v", err)
	}

	// Initialize Email Service
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)

	// Initialize Services
	submissionSvc := service.NewSubmissionService(
		store.JobRepository,
		store.ApplicationRepository,
		store.DocumentRepository,
		blobs,
		requirementCatalog,
		emailSvc,
	)
	applicationSvc := service.NewApplicationService(
		store.ApplicationRepository,
		store.DocumentRepository,
		blobs,
	)
	jobSvc := service.NewJobService(store.JobRepository)
	authSvc := service.NewAuthService(store.AdminRepository, tokenManager)
	dashboardSvc := service.NewDashboardService(store.JobRepository, store.ApplicationRepository)

	// Initialize HTTP handlers
	handlers := &httpapi.Handlers{
		Submissions:  httpapi.NewSubmissionHandler(submissionSvc),
		Applications: httpapi.NewApplicationHandler(applicationSvc),
		Jobs:         httpapi.NewJobHandler(jobSvc),
		Auth:         httpapi.NewAuthHandler(authSvc),
		Dashboard:    httpapi.NewDashboardHandler(dashboardSvc),
	}
	router := httpapi.NewRouter(handlers, authMiddleware)

	// Start scheduled jobs
	jobRunner := jobs.NewJobRunner(store.ApplicationRepository, blobs, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
